package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/finvision/corpledger/internal/domain"
	"github.com/finvision/corpledger/internal/usecase"
	"github.com/finvision/corpledger/internal/usecase/mocks"
)

func newLedgerUseCase() (*usecase.LedgerUseCase, *mocks.MockDocumentStore) {
	store := mocks.NewMockDocumentStore()
	return usecase.NewLedgerUseCase(store, mocks.NewSequenceIDGenerator()), store
}

func TestLedgerUseCase_AddIncome(t *testing.T) {
	uc, store := newLedgerUseCase()
	ctx := context.Background()

	entry, err := uc.AddIncome(ctx, usecase.AddEntryInput{
		Description: "Venda de software",
		Amount:      decimal.NewFromInt(5000),
		Category:    "Vendas de Produtos",
		Date:        "2026-01-10",
		Client:      "ACME",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected generated ID")
	}

	doc, _ := store.LoadDocument(ctx)
	if len(doc.Incomes) != 1 {
		t.Fatalf("expected 1 income, got %d", len(doc.Incomes))
	}
	if doc.Incomes[0].Client != "ACME" {
		t.Errorf("client = %q, want ACME", doc.Incomes[0].Client)
	}
}

func TestLedgerUseCase_AddIncome_PrependsNewest(t *testing.T) {
	uc, store := newLedgerUseCase()
	ctx := context.Background()

	for _, desc := range []string{"primeira", "segunda", "terceira"} {
		_, err := uc.AddIncome(ctx, usecase.AddEntryInput{
			Description: desc,
			Amount:      decimal.NewFromInt(100),
			Category:    "Outras Receitas",
			Date:        "2026-01-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	doc, _ := store.LoadDocument(ctx)
	if len(doc.Incomes) != 3 {
		t.Fatalf("expected 3 incomes, got %d", len(doc.Incomes))
	}
	if doc.Incomes[0].Description != "terceira" {
		t.Errorf("newest entry must come first, got %q", doc.Incomes[0].Description)
	}
	if doc.Incomes[2].Description != "primeira" {
		t.Errorf("oldest entry must come last, got %q", doc.Incomes[2].Description)
	}
}

func TestLedgerUseCase_AddIncome_Invalid(t *testing.T) {
	uc, store := newLedgerUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   usecase.AddEntryInput
		wantErr error
	}{
		{
			name: "negative amount",
			input: usecase.AddEntryInput{
				Description: "x", Amount: decimal.NewFromInt(-1),
				Category: "Outras Receitas", Date: "2026-01-10",
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "bad date",
			input: usecase.AddEntryInput{
				Description: "x", Amount: decimal.NewFromInt(1),
				Category: "Outras Receitas", Date: "10-01-2026",
			},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name: "empty category",
			input: usecase.AddEntryInput{
				Description: "x", Amount: decimal.NewFromInt(1),
				Category: "", Date: "2026-01-10",
			},
			wantErr: domain.ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.AddIncome(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	doc, _ := store.LoadDocument(ctx)
	if len(doc.Incomes) != 0 {
		t.Errorf("rejected entries must not be stored, found %d", len(doc.Incomes))
	}
}

func TestLedgerUseCase_AddExpense_InfersType(t *testing.T) {
	uc, store := newLedgerUseCase()
	ctx := context.Background()

	tests := []struct {
		category string
		want     domain.ExpenseType
	}{
		{"Aluguel", domain.ExpenseFixed},
		{"Marketing", domain.ExpenseVariable},
	}

	for _, tt := range tests {
		entry, err := uc.AddExpense(ctx, usecase.AddEntryInput{
			Description: "despesa",
			Amount:      decimal.NewFromInt(100),
			Category:    tt.category,
			Date:        "2026-01-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Type != tt.want {
			t.Errorf("category %q inferred type = %s, want %s", tt.category, entry.Type, tt.want)
		}
	}

	doc, _ := store.LoadDocument(ctx)
	if len(doc.Expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(doc.Expenses))
	}
}

func TestLedgerUseCase_DeleteExpense(t *testing.T) {
	uc, store := newLedgerUseCase()
	ctx := context.Background()

	first, _ := uc.AddExpense(ctx, usecase.AddEntryInput{
		Description: "manter", Amount: decimal.NewFromInt(100),
		Category: "Marketing", Date: "2026-01-10",
	})
	second, _ := uc.AddExpense(ctx, usecase.AddEntryInput{
		Description: "remover", Amount: decimal.NewFromInt(200),
		Category: "Marketing", Date: "2026-01-11",
	})

	if err := uc.DeleteExpense(ctx, second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, _ := store.LoadDocument(ctx)
	if len(doc.Expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(doc.Expenses))
	}
	if doc.Expenses[0].ID != first.ID {
		t.Errorf("wrong entry removed, remaining %q", doc.Expenses[0].ID)
	}
}

func TestLedgerUseCase_DeleteExpense_AbsentIDIsNoop(t *testing.T) {
	uc, store := newLedgerUseCase()
	ctx := context.Background()

	_, _ = uc.AddExpense(ctx, usecase.AddEntryInput{
		Description: "despesa", Amount: decimal.NewFromInt(100),
		Category: "Marketing", Date: "2026-01-10",
	})

	if err := uc.DeleteExpense(ctx, "does-not-exist"); err != nil {
		t.Fatalf("deleting an absent ID must not error: %v", err)
	}

	doc, _ := store.LoadDocument(ctx)
	if len(doc.Expenses) != 1 {
		t.Errorf("expected 1 expense untouched, got %d", len(doc.Expenses))
	}
}

func TestLedgerUseCase_ListIncomes_Filtered(t *testing.T) {
	uc, _ := newLedgerUseCase()
	ctx := context.Background()

	_, _ = uc.AddIncome(ctx, usecase.AddEntryInput{
		Description: "janeiro", Amount: decimal.NewFromInt(100),
		Category: "Outras Receitas", Date: "2026-01-10",
	})
	_, _ = uc.AddIncome(ctx, usecase.AddEntryInput{
		Description: "fevereiro", Amount: decimal.NewFromInt(200),
		Category: "Outras Receitas", Date: "2026-02-10",
	})

	got, err := uc.ListIncomes(ctx, domain.Filter{DateFrom: "2026-02-01", DateTo: "2026-02-28"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Description != "fevereiro" {
		t.Errorf("got %q", got[0].Description)
	}
}

func TestLedgerUseCase_Balance(t *testing.T) {
	uc, _ := newLedgerUseCase()
	ctx := context.Background()

	_, _ = uc.AddAccount(ctx, domain.Account{Bank: "Itaú", OpeningBalance: decimal.NewFromInt(1000)})
	_, _ = uc.AddIncome(ctx, usecase.AddEntryInput{
		Description: "venda", Amount: decimal.NewFromInt(5000),
		Category: "Vendas de Produtos", Date: "2026-01-10",
	})
	_, _ = uc.AddExpense(ctx, usecase.AddEntryInput{
		Description: "aluguel", Amount: decimal.NewFromInt(2000),
		Category: "Aluguel", Date: "2026-01-15",
	})

	balance, err := uc.Balance(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("balance = %s, want 4000", balance)
	}
}

func TestLedgerUseCase_AddIncomeCategory_Dedupes(t *testing.T) {
	uc, store := newLedgerUseCase()
	ctx := context.Background()

	if err := uc.AddIncomeCategory(ctx, "Royalties"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.AddIncomeCategory(ctx, "Royalties"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, _ := store.LoadDocument(ctx)
	count := 0
	for _, c := range doc.IncomeCategories {
		if c == "Royalties" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected category stored once, found %d times", count)
	}
}

func TestLedgerUseCase_StoreFailurePropagates(t *testing.T) {
	store := mocks.NewMockDocumentStore()
	storeErr := errors.New("connection refused")
	store.SaveDocumentFunc = func(ctx context.Context, doc *domain.Document) error {
		return storeErr
	}
	uc := usecase.NewLedgerUseCase(store, mocks.NewSequenceIDGenerator())

	_, err := uc.AddIncome(context.Background(), usecase.AddEntryInput{
		Description: "venda", Amount: decimal.NewFromInt(100),
		Category: "Outras Receitas", Date: "2026-01-10",
	})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestLedgerUseCase_UsesGeneratedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	store := mocks.NewMockDocumentStore()
	uc := usecase.NewLedgerUseCase(store, idGen)

	entry, err := uc.AddIncome(context.Background(), usecase.AddEntryInput{
		Description: "venda", Amount: decimal.NewFromInt(100),
		Category: "Outras Receitas", Date: "2026-01-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("entry ID = %q", entry.ID)
	}
}
