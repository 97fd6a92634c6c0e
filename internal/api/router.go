package api

import (
	"net/http"

	"github.com/AlexZinkM/etc-wallet/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(etcHandler *handler.EtcHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// ETC endpoints
	mux.HandleFunc("/etc/sync", etcHandler.SyncProgress)
	mux.HandleFunc("/etc/accounts", etcHandler.Accounts)
	mux.HandleFunc("/etc/balance", etcHandler.Balance)
	mux.HandleFunc("/etc/qr", etcHandler.QR)

	return mux
}
