package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/testutil"
)

func newTransactionService(stores *testutil.Stores) *TransactionService {
	return NewTransactionService(stores.Transactions, NewReceiptService(stores.Receipts))
}

func validInput() CreateTransactionInput {
	return CreateTransactionInput{
		Date:     "2025-03-15",
		Title:    "Snacks",
		Amount:   5000,
		Category: "간식비",
		Type:     domain.TransactionTypeExpense,
	}
}

func TestAddTransaction(t *testing.T) {
	stores := testutil.NewStores()
	svc := newTransactionService(stores)

	input := validInput()
	input.Title = "  Snacks  "
	input.Notes = " shared after practice "

	created, err := svc.AddTransaction("year_2025", input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Error("Expected generated id")
	}
	if created.Title != "Snacks" {
		t.Errorf("Expected trimmed title, got %q", created.Title)
	}
	if created.Notes != "shared after practice" {
		t.Errorf("Expected trimmed notes, got %q", created.Notes)
	}

	transactions, _ := svc.GetTransactions("year_2025")
	if len(transactions) != 1 {
		t.Fatalf("Expected 1 stored transaction, got %d", len(transactions))
	}
	if transactions[0].ID != created.ID {
		t.Errorf("Expected stored id %s, got %s", created.ID, transactions[0].ID)
	}
}

func TestAddTransaction_UniqueIDs(t *testing.T) {
	stores := testutil.NewStores()
	svc := newTransactionService(stores)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created, err := svc.AddTransaction("year_2025", validInput())
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("Duplicate id %s", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestAddTransaction_Validation(t *testing.T) {
	stores := testutil.NewStores()
	svc := newTransactionService(stores)

	cases := []struct {
		name   string
		mutate func(*CreateTransactionInput)
		want   error
	}{
		{"empty title", func(i *CreateTransactionInput) { i.Title = "   " }, domain.ErrTitleRequired},
		{"long title", func(i *CreateTransactionInput) { i.Title = strings.Repeat("a", domain.MaxTransactionTitleLength+1) }, domain.ErrTitleTooLong},
		{"zero amount", func(i *CreateTransactionInput) { i.Amount = 0 }, domain.ErrInvalidAmount},
		{"negative amount", func(i *CreateTransactionInput) { i.Amount = -10 }, domain.ErrInvalidAmount},
		{"empty category", func(i *CreateTransactionInput) { i.Category = "" }, domain.ErrCategoryRequired},
		{"bad type", func(i *CreateTransactionInput) { i.Type = "transfer" }, domain.ErrInvalidTransactionType},
		{"bad date", func(i *CreateTransactionInput) { i.Date = "15/03/2025" }, domain.ErrInvalidDate},
		{"long notes", func(i *CreateTransactionInput) { i.Notes = strings.Repeat("b", domain.MaxTransactionNotesLength+1) }, domain.ErrNotesTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			if _, err := svc.AddTransaction("year_2025", input); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}

	transactions, _ := svc.GetTransactions("year_2025")
	if len(transactions) != 0 {
		t.Errorf("Expected nothing stored after rejected inputs, got %d", len(transactions))
	}
}

func TestUpdateTransaction(t *testing.T) {
	stores := testutil.NewStores()
	svc := newTransactionService(stores)

	created, _ := svc.AddTransaction("year_2025", validInput())

	updated := *created
	updated.Title = "Drinks"
	updated.Amount = 8000
	if err := svc.UpdateTransaction("year_2025", updated); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	transactions, _ := svc.GetTransactions("year_2025")
	if len(transactions) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(transactions))
	}
	if transactions[0].Title != "Drinks" || transactions[0].Amount != 8000 {
		t.Errorf("Expected replacement to win, got %+v", transactions[0])
	}
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	stores := testutil.NewStores()
	svc := newTransactionService(stores)

	missing := domain.Transaction{
		ID: "missing", Date: "2025-01-01", Title: "x", Amount: 1,
		Category: "기타", Type: domain.TransactionTypeExpense,
	}
	if err := svc.UpdateTransaction("year_2025", missing); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound, got %v", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	stores := testutil.NewStores()
	svc := newTransactionService(stores)

	first, _ := svc.AddTransaction("year_2025", validInput())
	second, _ := svc.AddTransaction("year_2025", validInput())

	if err := svc.DeleteTransaction("year_2025", first.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	transactions, _ := svc.GetTransactions("year_2025")
	if len(transactions) != 1 || transactions[0].ID != second.ID {
		t.Errorf("Expected only the second transaction to remain, got %+v", transactions)
	}

	if err := svc.DeleteTransaction("year_2025", first.ID); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound on second delete, got %v", err)
	}
}

func TestDeleteTransaction_ReleasesReceipt(t *testing.T) {
	stores := testutil.NewStores()
	svc := newTransactionService(stores)

	key, _ := stores.Receipts.Save("lunch.jpg", "data:image/jpeg;base64,abc")

	input := validInput()
	input.ReceiptPath = key
	created, err := svc.AddTransaction("year_2025", input)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := svc.DeleteTransaction("year_2025", created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := stores.Receipts.Get(key); !errors.Is(err, domain.ErrReceiptNotFound) {
		t.Errorf("Expected receipt released with the transaction, got %v", err)
	}
}
