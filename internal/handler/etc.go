package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/AlexZinkM/etc-wallet/etc"
	"github.com/AlexZinkM/etc-wallet/internal/common"
	"github.com/AlexZinkM/etc-wallet/internal/model"

	gethcommon "github.com/ethereum/go-ethereum/common"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrSize = 256 // px

// EtcService is the wallet API the handlers serve
type EtcService interface {
	GetSyncProgress(ctx context.Context) (*model.SyncProgress, error)
	GetAccounts(ctx context.Context) ([]model.Account, error)
	GetAccountBalance(ctx context.Context, accountID string) (*big.Int, error)
}

// RateSource provides the ETC/USD exchange rate
type RateSource interface {
	GetETCtoUSDRate(ctx context.Context) (string, error)
}

// EtcHandler holds dependencies for ETC operations
type EtcHandler struct {
	api     EtcService
	rates   RateSource
	timeout time.Duration
	log     *zap.Logger
}

// NewEtcHandler creates a new EtcHandler. timeout bounds each request's node calls.
func NewEtcHandler(api EtcService, rates RateSource, timeout time.Duration, log *zap.Logger) *EtcHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EtcHandler{
		api:     api,
		rates:   rates,
		timeout: timeout,
		log:     log.Named("handler"),
	}
}

// SyncProgress handles GET /etc/sync
// @Summary      Get node sync progress
// @Description  Local and network block heights of the Mantis node (100/100 when synced)
// @Tags         etc
// @Produce      json
// @Success      200  {object}  model.SyncProgress
// @Failure      502  {object}  model.ErrorResponse
// @Router       /etc/sync [get]
func (h *EtcHandler) SyncProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	progress, err := h.api.GetSyncProgress(ctx)
	if err != nil {
		h.writeAPIError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

// Accounts handles GET /etc/accounts
// @Summary      List accounts
// @Description  Lists accounts managed by the Mantis node with their balances
// @Tags         etc
// @Produce      json
// @Success      200  {object}  model.AccountsResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /etc/accounts [get]
func (h *EtcHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	accounts, err := h.api.GetAccounts(ctx)
	if err != nil {
		h.writeAPIError(w, err)
		return
	}

	resp := model.AccountsResponse{Accounts: make([]model.AccountView, 0, len(accounts))}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, model.AccountView{
			ID:      a.ID,
			Balance: common.WeiString(a.Balance),
			ETC:     common.WeiToETC(a.Balance),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Balance handles GET /etc/balance
// @Summary      Get account balance (USD = ETC * rate)
// @Description  Gets the latest balance of one account with the ETC/USD rate
// @Tags         etc
// @Produce      json
// @Param        account  query     string  true  "Account address (0x...)"
// @Success      200      {object}  model.BalanceResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /etc/balance [get]
func (h *EtcHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	account, ok := accountParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	wei, err := h.api.GetAccountBalance(ctx, account)
	if err != nil {
		h.writeAPIError(w, err)
		return
	}

	rate, err := h.rates.GetETCtoUSDRate(ctx)
	if err != nil {
		h.log.Error("failed to get rate", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{
			Error: "exchange rate unavailable",
			Code:  model.CodeRateUnavailable,
		})
		return
	}

	amount := common.WeiToETC(wei)

	// float only for display
	amountFloat, _ := strconv.ParseFloat(amount, 64)
	rateFloat, _ := strconv.ParseFloat(rate, 64)

	writeJSON(w, http.StatusOK, model.BalanceResponse{
		Account: account,
		Wei:     common.WeiString(wei),
		ETC:     amount,
		Rate:    rate,
		USD:     fmt.Sprintf("%.2f", amountFloat*rateFloat),
	})
}

// QR handles GET /etc/qr
// @Summary      Receive address QR code
// @Description  PNG QR code of the EIP-55 checksummed account address
// @Tags         etc
// @Produce      png
// @Param        account  query     string  true  "Account address (0x...)"
// @Success      200
// @Failure      400      {object}  model.ErrorResponse
// @Router       /etc/qr [get]
func (h *EtcHandler) QR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	account, ok := accountParam(w, r)
	if !ok {
		return
	}

	png, err := qrcode.Encode(gethcommon.HexToAddress(account).Hex(), qrcode.Medium, qrSize)
	if err != nil {
		h.log.Error("failed to encode qr", zap.String("account", account), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error: "failed to generate QR code",
			Code:  model.CodeInternal,
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *EtcHandler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

// writeAPIError maps adapter errors onto the response
func (h *EtcHandler) writeAPIError(w http.ResponseWriter, err error) {
	if errors.Is(err, etc.ErrGenericAPI) {
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{
			Error: err.Error(),
			Code:  model.CodeGenericAPIError,
		})
		return
	}
	h.log.Error("unexpected api error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error: "internal error",
		Code:  model.CodeInternal,
	})
}

// accountParam reads and validates the account query parameter.
// It writes a 400 response and returns false when the value is unusable.
func accountParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	account := r.URL.Query().Get("account")
	if account == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: "account query parameter is required",
			Code:  model.CodeInvalidAccount,
		})
		return "", false
	}
	if !gethcommon.IsHexAddress(account) {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: "account must be a 20-byte hex address",
			Code:  model.CodeInvalidAccount,
		})
		return "", false
	}
	return account, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
