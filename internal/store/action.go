package store

import (
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
)

// State is the in-memory copy of the remote records. Transactions are kept
// newest first as returned by the server; new records are prepended.
type State struct {
	Transactions []transaction.Transaction `json:"transactions"`
	Budgets      []budget.Budget           `json:"budgets"`
	Loading      bool                      `json:"loading"`
}

// Action is a state transition. The set of actions is closed: only the types
// in this file implement it.
type Action interface {
	Kind() string
	reduce(State) State
}

type SetLoading struct{ Loading bool }

type SetTransactions struct{ Transactions []transaction.Transaction }

type AddTransaction struct{ Transaction transaction.Transaction }

type DeleteTransaction struct{ ID string }

type SetBudgets struct{ Budgets []budget.Budget }

type AddBudget struct{ Budget budget.Budget }

// UpdateBudget merges the non-zero fields of Budget into the budget with the
// same ID.
type UpdateBudget struct{ Budget budget.Budget }

type DeleteBudget struct{ ID string }

func (SetLoading) Kind() string        { return "SET_LOADING" }
func (SetTransactions) Kind() string   { return "SET_TRANSACTIONS" }
func (AddTransaction) Kind() string    { return "ADD_TRANSACTION" }
func (DeleteTransaction) Kind() string { return "DELETE_TRANSACTION" }
func (SetBudgets) Kind() string        { return "SET_BUDGETS" }
func (AddBudget) Kind() string         { return "ADD_BUDGET" }
func (UpdateBudget) Kind() string      { return "UPDATE_BUDGET" }
func (DeleteBudget) Kind() string      { return "DELETE_BUDGET" }

// Reduce returns the state after applying a. s is never modified.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.reduce(s)
}

func (a SetLoading) reduce(s State) State {
	s.Loading = a.Loading
	return s
}

func (a SetTransactions) reduce(s State) State {
	s.Transactions = append([]transaction.Transaction(nil), a.Transactions...)
	return s
}

func (a AddTransaction) reduce(s State) State {
	next := make([]transaction.Transaction, 0, len(s.Transactions)+1)
	next = append(next, a.Transaction)
	s.Transactions = append(next, s.Transactions...)
	return s
}

func (a DeleteTransaction) reduce(s State) State {
	next := make([]transaction.Transaction, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		if t.ID != a.ID {
			next = append(next, t)
		}
	}
	s.Transactions = next
	return s
}

func (a SetBudgets) reduce(s State) State {
	s.Budgets = append([]budget.Budget(nil), a.Budgets...)
	return s
}

func (a AddBudget) reduce(s State) State {
	next := make([]budget.Budget, 0, len(s.Budgets)+1)
	next = append(next, a.Budget)
	s.Budgets = append(next, s.Budgets...)
	return s
}

func (a UpdateBudget) reduce(s State) State {
	next := make([]budget.Budget, len(s.Budgets))
	for i, b := range s.Budgets {
		if b.ID == a.Budget.ID {
			b = b.Merge(a.Budget)
		}
		next[i] = b
	}
	s.Budgets = next
	return s
}

func (a DeleteBudget) reduce(s State) State {
	next := make([]budget.Budget, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		if b.ID != a.ID {
			next = append(next, b)
		}
	}
	s.Budgets = next
	return s
}
