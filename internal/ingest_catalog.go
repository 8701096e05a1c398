package internal

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"perkly/internal/db/models/postgres/public/model"
	"perkly/internal/repository"

	"github.com/gocarina/gocsv"
)

type catalogCsvRow struct {
	CardCategory     string `csv:"Card Category"`
	SubCategory      string `csv:"Sub Category"`
	Program          string `csv:"Program"`
	BankName         string `csv:"Bank Name"`
	Product          string `csv:"Product"`
	MinimumSalary    string `csv:"Minimum Salary"`
	ValueMetric      string `csv:"Value Metric"`
	ValueCalculation string `csv:"Value Calculation"`
	Provider         string `csv:"Provider"`
	AnnualFee        string `csv:"Annual Fee"`
	JoiningFee       string `csv:"Joining Fee"`
	ExtraFees        string `csv:"Extra Fees"`
	CorePerks        string `csv:"Core Perks"`
	SecondaryPerks   string `csv:"Secondary Perks"`
	ExtraPerks       string `csv:"Extra Perks"`
	CardType         string `csv:"Card type"`
	CurrentOffer     string `csv:"Current Offer"`
	ProductPage      string `csv:"Product Page"`
	OldNotes         string `csv:"Old Notes"`
}

func (r catalogCsvRow) toModel() model.Card {
	return model.Card{
		CardCategory:     NormalizeText(r.CardCategory),
		SubCategory:      NormalizeText(r.SubCategory),
		Program:          NormalizeText(r.Program),
		BankName:         NormalizeText(r.BankName),
		Product:          NormalizeText(r.Product),
		MinimumSalary:    ParseNumber(r.MinimumSalary),
		ValueMetric:      NormalizeText(r.ValueMetric),
		ValueCalculation: NormalizeText(r.ValueCalculation),
		Provider:         NormalizeText(r.Provider),
		AnnualFee:        ParseNumber(r.AnnualFee),
		JoiningFee:       ParseNumber(r.JoiningFee),
		ExtraFees:        NormalizeText(r.ExtraFees),
		CorePerks:        NormalizeText(r.CorePerks),
		SecondaryPerks:   NormalizeText(r.SecondaryPerks),
		ExtraPerks:       NormalizeText(r.ExtraPerks),
		CardType:         NormalizeText(r.CardType),
		CurrentOffer:     NormalizeText(r.CurrentOffer),
		ProductPage:      NormalizeText(r.ProductPage),
		OldNotes:         NormalizeText(r.OldNotes),
	}
}

// re-exported spreadsheets repeat the header as data rows
func (r catalogCsvRow) isHeaderEcho() bool {
	return strings.TrimSpace(r.CardCategory) == "Card Category" ||
		strings.TrimSpace(r.SubCategory) == "Sub Category"
}

// SeedCatalog loads the card catalog from a CSV export of the source
// spreadsheet. It only seeds an empty catalog; existing rows are left
// untouched. Returns the number of cards inserted.
func SeedCatalog(
	tx *sql.Tx,
	path string,
	cardRepository repository.CardRepository,
) (int, error) {
	count, err := cardRepository.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	rows := []catalogCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse catalog csv: %w", err)
	}

	inserted := 0
	for _, row := range rows {
		if row.isHeaderEcho() {
			continue
		}
		card := row.toModel()
		if card.CardCategory == "" {
			continue
		}
		if _, err := cardRepository.Add(tx, card); err != nil {
			return inserted, fmt.Errorf("failed to insert card %q: %w", card.Product, err)
		}
		inserted++
	}

	return inserted, nil
}
