// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/hexaco-protocol/middleware"
	"github.com/danielhkuo/hexaco-protocol/models"
	"github.com/danielhkuo/hexaco-protocol/questions"
)

type BankHandler struct {
	bank *questions.Bank
}

func NewBankHandler(bank *questions.Bank) *BankHandler {
	return &BankHandler{bank: bank}
}

type bankResponse struct {
	Items   []models.Item   `json:"items"`
	Scales  []models.Scale  `json:"scales"`
	Options []models.Likert `json:"options"`
}

// GetQuestions handles GET /questions: the full bank for the landing page's
// dimension cards and the questionnaire itself.
func (h *BankHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, bankResponse{
		Items:   h.bank.Items(),
		Scales:  h.bank.Scales(),
		Options: questions.LikertOptions(),
	})
}
