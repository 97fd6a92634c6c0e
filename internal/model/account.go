package model

import "math/big"

// Account is a node-managed account with its balance in wei
type Account struct {
	ID      string   `json:"id"`
	Balance *big.Int `json:"balance"`
}

// AccountView is an account as rendered by the HTTP API
type AccountView struct {
	ID      string `json:"id"`
	Balance string `json:"balance"` // wei
	ETC     string `json:"etc"`
}

// AccountsResponse represents response for GET /etc/accounts
type AccountsResponse struct {
	Accounts []AccountView `json:"accounts"`
}

// BalanceResponse represents response for GET /etc/balance
type BalanceResponse struct {
	Account string `json:"account"`
	Wei     string `json:"wei"`
	ETC     string `json:"etc"`
	Rate    string `json:"rate"`
	USD     string `json:"etc_amount_in_usd"`
}
