package api

import (
	"fmt"
	"strconv"

	"perkly/internal"
	"perkly/internal/db/models/postgres/public/model"
	"perkly/internal/repository"

	"github.com/gin-gonic/gin"
)

// cardRequest takes every field as text, the way the source
// spreadsheet and admin form deliver them. Numeric fields run through
// ParseNumber, text through NormalizeText.
type cardRequest struct {
	CardCategory     string `json:"card_category"`
	SubCategory      string `json:"sub_category"`
	Program          string `json:"program"`
	BankName         string `json:"bank_name"`
	Product          string `json:"product"`
	MinimumSalary    string `json:"minimum_salary"`
	ValueMetric      string `json:"value_metric"`
	ValueCalculation string `json:"value_calculation"`
	Provider         string `json:"provider"`
	AnnualFee        string `json:"annual_fee"`
	JoiningFee       string `json:"joining_fee"`
	ExtraFees        string `json:"extra_fees"`
	CorePerks        string `json:"core_perks"`
	SecondaryPerks   string `json:"secondary_perks"`
	ExtraPerks       string `json:"extra_perks"`
	CardType         string `json:"card_type"`
	CurrentOffer     string `json:"current_offer"`
	ProductPage      string `json:"product_page"`
	OldNotes         string `json:"old_notes"`
}

func (r cardRequest) toModel() model.Card {
	return model.Card{
		CardCategory:     internal.NormalizeText(r.CardCategory),
		SubCategory:      internal.NormalizeText(r.SubCategory),
		Program:          internal.NormalizeText(r.Program),
		BankName:         internal.NormalizeText(r.BankName),
		Product:          internal.NormalizeText(r.Product),
		MinimumSalary:    internal.ParseNumber(r.MinimumSalary),
		ValueMetric:      internal.NormalizeText(r.ValueMetric),
		ValueCalculation: internal.NormalizeText(r.ValueCalculation),
		Provider:         internal.NormalizeText(r.Provider),
		AnnualFee:        internal.ParseNumber(r.AnnualFee),
		JoiningFee:       internal.ParseNumber(r.JoiningFee),
		ExtraFees:        internal.NormalizeText(r.ExtraFees),
		CorePerks:        internal.NormalizeText(r.CorePerks),
		SecondaryPerks:   internal.NormalizeText(r.SecondaryPerks),
		ExtraPerks:       internal.NormalizeText(r.ExtraPerks),
		CardType:         internal.NormalizeText(r.CardType),
		CurrentOffer:     internal.NormalizeText(r.CurrentOffer),
		ProductPage:      internal.NormalizeText(r.ProductPage),
		OldNotes:         internal.NormalizeText(r.OldNotes),
	}
}

func (m ApiHandler) listCards(c *gin.Context) {
	cards, err := m.CardRepository.List(repository.CardFilters{})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, cards)
}

func (m ApiHandler) addCard(c *gin.Context) {
	var requestBody cardRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	card, err := m.CardRepository.Add(tx, requestBody.toModel())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, card)
}

func (m ApiHandler) updateCard(c *gin.Context) {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid card id: %w", err), c, 400)
		return
	}

	var requestBody cardRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	card := requestBody.toModel()
	card.CardID = int32(cardID)
	if err := m.CardRepository.Update(tx, card); err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}

func (m ApiHandler) deleteCard(c *gin.Context) {
	cardID, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid card id: %w", err), c, 400)
		return
	}

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	if err := m.CardRepository.Delete(tx, int32(cardID)); err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
