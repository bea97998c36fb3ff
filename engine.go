package kirabuku

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kelabsilat/kirabuku/date"
)

// DefaultMonthlyFee is the standard dues amount per member per month.
var DefaultMonthlyFee = RM(30)

// DefaultSessionTarget is the cumulative dues a member is expected to pay
// over one training session.
var DefaultSessionTarget = RM(150)

// Engine implements every cross-collection mutation on a Store, keeping the
// member list, the payment matrix and the ledger mutually consistent.
//
// All operations are synchronous and run to completion before any reader
// (a re-render or a persistence write) observes the store, so each compound
// mutation is a single atomic state transition.
type Engine struct {
	store *Store

	fee         Money
	feeCategory string

	now   func() time.Time // injected for tests
	newID func() string
}

// NewEngine creates an engine operating on the given store, using the
// default monthly fee and fee category.
func NewEngine(store *Store) *Engine {
	return &Engine{
		store:       store,
		fee:         DefaultMonthlyFee,
		feeCategory: FeeCategory,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// SetFee overrides the monthly fee used for new payment records and derived
// ledger entries.
func (e *Engine) SetFee(fee Money) { e.fee = fee }

// SetFeeCategory overrides the ledger category of derived entries. The
// category stays reserved: manual entries in it must name a member.
func (e *Engine) SetFeeCategory(category string) {
	if category != "" {
		e.feeCategory = category
	}
}

// CheckInvariants audits the store with the engine's fee category.
func (e *Engine) CheckInvariants() error {
	return e.store.checkInvariants(e.feeCategory)
}

// Store returns the store the engine operates on.
func (e *Engine) Store() *Store { return e.store }

// AddMember assigns a fresh id to the member and appends it to the store.
// Member numbers are deliberately not checked for uniqueness: duplicates
// only affect display sort order.
func (e *Engine) AddMember(m Member) (Member, error) {
	if strings.TrimSpace(m.Name) == "" {
		return Member{}, fmt.Errorf("member name is empty: %w", ErrInvalidInput)
	}
	m.ID = e.newID()
	if m.JoinDate.IsZero() {
		m.JoinDate = date.New(e.now().Date())
	}
	e.store.members = append(e.store.members, m)
	return m, nil
}

// UpdateMember replaces the stored member with the same id.
func (e *Engine) UpdateMember(m Member) error {
	i := e.store.memberIndex(m.ID)
	if i < 0 {
		return fmt.Errorf("member %q: %w", m.ID, ErrNotFound)
	}
	e.store.members[i] = m
	return nil
}

// DeleteMember removes the member together with every payment record and
// every transaction referencing it, directly or through a payment-link key.
// The three removals are applied as one unit: no reader can ever observe a
// transaction pointing at a vanished member.
func (e *Engine) DeleteMember(id string) error {
	i := e.store.memberIndex(id)
	if i < 0 {
		return fmt.Errorf("member %q: %w", id, ErrNotFound)
	}

	members := slices.Delete(slices.Clone(e.store.members), i, i+1)
	payments := slices.DeleteFunc(slices.Clone(e.store.payments), func(p PaymentRecord) bool {
		return p.MemberID == id
	})
	transactions := slices.DeleteFunc(slices.Clone(e.store.transactions), func(t Transaction) bool {
		return t.MemberID == id || strings.HasPrefix(t.PaymentKey, id+"-")
	})

	e.store.members = members
	e.store.payments = payments
	e.store.transactions = transactions
	return nil
}

// AddTransaction validates the entry, assigns a fresh id and appends it to
// the ledger. Entries carrying a payment-link key cannot be created here;
// they only ever come from TogglePayment.
func (e *Engine) AddTransaction(t Transaction) (Transaction, error) {
	if t.PaymentKey != "" {
		return Transaction{}, fmt.Errorf("payment-linked entries are derived, not entered: %w", ErrDerivedImmutable)
	}
	if err := e.validateTransaction(t); err != nil {
		return Transaction{}, err
	}
	t.ID = e.newID()
	if t.Date.IsZero() {
		t.Date = date.New(e.now().Date())
	}
	e.store.transactions = append(e.store.transactions, t)
	return t, nil
}

// UpdateTransaction replaces the stored transaction with the same id.
// Derived entries are rejected, whether the immutability is on the stored
// entry or smuggled in on the replacement.
func (e *Engine) UpdateTransaction(t Transaction) error {
	i := e.store.transactionIndex(t.ID)
	if i < 0 {
		return fmt.Errorf("transaction %q: %w", t.ID, ErrNotFound)
	}
	if e.store.transactions[i].IsDerived() || t.IsDerived() {
		return fmt.Errorf("transaction %q: %w", t.ID, ErrDerivedImmutable)
	}
	if err := e.validateTransaction(t); err != nil {
		return err
	}
	e.store.transactions[i] = t
	return nil
}

// DeleteTransaction removes the transaction with this id. Derived entries
// are rejected; they disappear only when their payment is toggled back to
// unpaid or their member is deleted.
func (e *Engine) DeleteTransaction(id string) error {
	i := e.store.transactionIndex(id)
	if i < 0 {
		return fmt.Errorf("transaction %q: %w", id, ErrNotFound)
	}
	if e.store.transactions[i].IsDerived() {
		return fmt.Errorf("transaction %q: %w", id, ErrDerivedImmutable)
	}
	e.store.transactions = slices.Delete(slices.Clone(e.store.transactions), i, i+1)
	return nil
}

func (e *Engine) validateTransaction(t Transaction) error {
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("transaction type %q: %w", t.Type, ErrInvalidInput)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount %s must be positive: %w", t.Amount, ErrInvalidInput)
	}
	if t.Category == e.feeCategory && t.MemberID == "" {
		return fmt.Errorf("fee-category entry needs a member reference: %w", ErrInvalidInput)
	}
	if t.MemberID != "" && e.store.Member(t.MemberID) == nil {
		return fmt.Errorf("member %q: %w", t.MemberID, ErrNotFound)
	}
	if t.Month != nil && (*t.Month < 0 || *t.Month > 11) {
		return fmt.Errorf("month %d out of range: %w", *t.Month, ErrInvalidInput)
	}
	return nil
}

// TogglePayment flips the dues status of one member for one (month, year).
//
// Marking a month paid creates exactly one fee-income entry in the ledger,
// linked back to the payment record; marking it unpaid retracts every entry
// carrying that link. The first toggle for a key lazily creates the payment
// record itself, already marked paid. The status change and the ledger
// mutation are applied together, so toggling twice always returns the store
// to its original observable state (modulo the new entry's id and the paid
// timestamp).
func (e *Engine) TogglePayment(memberID string, month, year int) (PaymentRecord, error) {
	if month < 0 || month > 11 {
		return PaymentRecord{}, fmt.Errorf("month %d out of range: %w", month, ErrInvalidInput)
	}
	member := e.store.Member(memberID)
	if member == nil {
		return PaymentRecord{}, fmt.Errorf("member %q: %w", memberID, ErrNotFound)
	}
	join := member.JoinDate
	if year < join.Year() || (year == join.Year() && month < join.MonthIndex()) {
		return PaymentRecord{}, fmt.Errorf("%s %d for %s: %w", MonthName(month), year, member.Name, ErrBeforeJoin)
	}

	key := PaymentKey(memberID, month, year)

	if i := e.store.paymentIndex(memberID, month, year); i >= 0 {
		rec := e.store.payments[i]
		if rec.Status == Paid {
			rec.Status = Unpaid
			// Retract all linked entries, not just the first: a store
			// repaired from a corrupt blob may hold more than one.
			transactions := slices.DeleteFunc(slices.Clone(e.store.transactions), func(t Transaction) bool {
				return t.PaymentKey == key
			})
			e.store.payments[i] = rec
			e.store.transactions = transactions
			return rec, nil
		}
		rec.Status = Paid
		rec.PaidDate = e.now()
		e.store.payments[i] = rec
		// The ledger entry always carries the fee currently in force; the
		// record keeps the amount it was created with.
		e.store.transactions = append(e.store.transactions, e.feeTransaction(*member, month, key, e.fee))
		return rec, nil
	}

	// First-time mark paid: the record is created lazily.
	rec := PaymentRecord{
		MemberID: memberID,
		Year:     year,
		Month:    month,
		Amount:   e.fee,
		PaidDate: e.now(),
		Status:   Paid,
	}
	e.store.payments = append(e.store.payments, rec)
	e.store.transactions = append(e.store.transactions, e.feeTransaction(*member, month, key, rec.Amount))
	return rec, nil
}

// feeTransaction builds the derived fee-income entry for a paid month.
func (e *Engine) feeTransaction(member Member, month int, key string, amount Money) Transaction {
	m := month
	return Transaction{
		ID:          e.newID(),
		Date:        date.New(e.now().Date()),
		Type:        Income,
		Category:    e.feeCategory,
		Amount:      amount,
		Description: fmt.Sprintf("Yuran %s - %s", MonthName(month), member.Name),
		MemberID:    member.ID,
		Month:       &m,
		PaymentKey:  key,
	}
}
