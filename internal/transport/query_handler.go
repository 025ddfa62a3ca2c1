package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// QueryHandler serves address UTXO pages and raw transaction submission.
type QueryHandler struct {
	logger      *zap.Logger
	store       UTXOStore
	broadcaster TransactionBroadcaster
}

// NewQueryHandler returns a QueryHandler instance.
func NewQueryHandler(store UTXOStore, broadcaster TransactionBroadcaster, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		logger:      logger.Named("queryHandler"),
		store:       store,
		broadcaster: broadcaster,
	}
}

// Register mounts the handler's routes on mux.
func (h *QueryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/addresses/{address}/utxos", h.AddressUTXOs)
	mux.HandleFunc("POST /v1/transactions", h.SubmitTransaction)
}

type utxoItem struct {
	TxID        string `json:"txid"`
	Vout        uint32 `json:"vout"`
	Value       uint64 `json:"value"`
	Address     string `json:"address"`
	BlockHeight uint64 `json:"blockHeight"`
}

type addressUTXOsResponse struct {
	Items   []utxoItem `json:"items"`
	Total   uint64     `json:"total"`
	HasMore bool       `json:"hasMore"`
}

// AddressUTXOs returns one page of the address's unspent outputs.
func (h *QueryHandler) AddressUTXOs(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	if address == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	limit, err := parsePageParam(r.URL.Query().Get("limit"), defaultPageLimit)
	if err != nil || limit == 0 || limit > maxPageLimit {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := parsePageParam(r.URL.Query().Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}
	sortByValueDesc := r.URL.Query().Get("sort") == "value_desc"

	utxos, total, err := h.store.UTXOsByAddress(r.Context(), address, limit, offset, sortByValueDesc)
	if err != nil {
		h.logger.Error("query utxos by address failed", zap.String("address", address), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]utxoItem, 0, len(utxos))
	for _, utxo := range utxos {
		txid, vout, err := model.SplitOutpointID(utxo.ID)
		if err != nil {
			h.logger.Error("malformed utxo id in store", zap.String("id", utxo.ID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		items = append(items, utxoItem{
			TxID:        txid,
			Vout:        vout,
			Value:       utxo.Value,
			Address:     utxo.Address,
			BlockHeight: utxo.BlockHeight,
		})
	}

	writeJSON(w, http.StatusOK, addressUTXOsResponse{
		Items:   items,
		Total:   total,
		HasMore: offset+uint64(len(items)) < total,
	})
}

type submitTransactionRequest struct {
	RawTransaction string `json:"rawTransaction"`
}

type submitTransactionResponse struct {
	TxID string `json:"txid"`
}

// SubmitTransaction forwards a raw transaction to the node.
func (h *QueryHandler) SubmitTransaction(w http.ResponseWriter, r *http.Request) {
	var req submitTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.RawTransaction == "" {
		writeError(w, http.StatusBadRequest, "rawTransaction is required")
		return
	}

	txid, err := h.broadcaster.SubmitRawTransaction(r.Context(), req.RawTransaction)
	if err != nil {
		h.logger.Error("submit raw transaction failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "transaction rejected")
		return
	}

	writeJSON(w, http.StatusOK, submitTransactionResponse{TxID: txid})
}

func parsePageParam(raw string, fallback uint64) (uint64, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.New("not an unsigned integer")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
