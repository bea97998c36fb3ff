package kirabuku

import (
	"errors"
	"testing"

	"github.com/kelabsilat/kirabuku/date"
)

func TestTogglePayment_FirstTimeMarksPaid(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad bin Zulkifli", "1", "2023-01-15")

	rec, err := e.TogglePayment("M1", 0, 2024)
	if err != nil {
		t.Fatalf("TogglePayment: %v", err)
	}

	if rec.Status != Paid {
		t.Errorf("status = %q, want PAID", rec.Status)
	}
	if !rec.Amount.Equal(RM(30)) {
		t.Errorf("amount = %s, want RM30.00", rec.Amount)
	}
	if rec.PaidDate.IsZero() {
		t.Error("paid date not set")
	}
	if got := len(e.store.payments); got != 1 {
		t.Fatalf("payment records = %d, want 1", got)
	}

	linked := e.store.TransactionsByPaymentKey("M1-0-2024")
	if len(linked) != 1 {
		t.Fatalf("linked transactions = %d, want 1", len(linked))
	}
	tx := linked[0]
	if tx.Type != Income {
		t.Errorf("type = %q, want IN", tx.Type)
	}
	if tx.Category != FeeCategory {
		t.Errorf("category = %q, want %q", tx.Category, FeeCategory)
	}
	if !tx.Amount.Equal(RM(30)) {
		t.Errorf("amount = %s, want RM30.00", tx.Amount)
	}
	if tx.Description != "Yuran Januari - Ahmad bin Zulkifli" {
		t.Errorf("description = %q", tx.Description)
	}
	if tx.MemberID != "M1" {
		t.Errorf("member reference = %q, want M1", tx.MemberID)
	}
	if tx.Month == nil || *tx.Month != 0 {
		t.Errorf("month reference = %v, want 0", tx.Month)
	}
}

func TestSetFeeCategory_FlowsIntoDerivedEntries(t *testing.T) {
	e := newTestEngine()
	e.SetFeeCategory("Yuran Keahlian")
	addTestMember(e.store, "M1", "Ahmad bin Zulkifli", "1", "2023-01-15")

	if _, err := e.TogglePayment("M1", 0, 2024); err != nil {
		t.Fatalf("TogglePayment: %v", err)
	}
	derived := e.store.TransactionsByPaymentKey("M1-0-2024")[0]
	if derived.Category != "Yuran Keahlian" {
		t.Errorf("category = %q, want the configured one", derived.Category)
	}

	// The configured category takes over the reserved role.
	if _, err := e.AddTransaction(Transaction{Type: Income, Category: "Yuran Keahlian", Amount: RM(30)}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("manual entry in configured category without member = %v, want ErrInvalidInput", err)
	}
	if _, err := e.AddTransaction(Transaction{Type: Income, Category: FeeCategory, Amount: RM(10), Description: "Derma lama"}); err != nil {
		t.Errorf("default category should be free once overridden: %v", err)
	}

	if err := e.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants: %v", err)
	}

	// A blank override keeps the current category.
	e.SetFeeCategory("")
	if _, err := e.TogglePayment("M1", 1, 2024); err != nil {
		t.Fatalf("TogglePayment: %v", err)
	}
	if got := e.store.TransactionsByPaymentKey("M1-1-2024")[0].Category; got != "Yuran Keahlian" {
		t.Errorf("category after blank override = %q", got)
	}
}

func TestTogglePayment_PairIsIdempotent(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad bin Zulkifli", "1", "2023-01-15")
	// An unrelated manual entry must survive the toggling.
	if _, err := e.AddTransaction(Transaction{Type: Expense, Category: "Sewa", Amount: RM(100), Description: "Sewa dewan"}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	before := len(e.store.transactions)

	if _, err := e.TogglePayment("M1", 3, 2024); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	rec, err := e.TogglePayment("M1", 3, 2024)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if rec.Status != Unpaid {
		t.Errorf("status after pair = %q, want UNPAID", rec.Status)
	}
	if got := len(e.store.transactions); got != before {
		t.Errorf("transactions after pair = %d, want %d", got, before)
	}
	if got := len(e.store.TransactionsByPaymentKey("M1-3-2024")); got != 0 {
		t.Errorf("linked transactions after pair = %d, want 0", got)
	}
	// The record itself survives, only its status flipped.
	if got := len(e.store.payments); got != 1 {
		t.Errorf("payment records = %d, want 1", got)
	}
}

func TestTogglePayment_UnpaidRemovesEveryLinkedEntry(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad bin Zulkifli", "1", "2023-01-15")
	if _, err := e.AddTransaction(Transaction{Type: Expense, Category: "Sewa", Amount: RM(100), Description: "Sewa dewan"}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	if _, err := e.TogglePayment("M1", 3, 2024); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	// Plant a second entry carrying the same payment key, as a drifted
	// imported file could. The toggle back must sweep them all.
	dup := e.store.TransactionsByPaymentKey("M1-3-2024")[0]
	dup.ID = "tx-dup"
	e.store.transactions = append(e.store.transactions, dup)

	rec, err := e.TogglePayment("M1", 3, 2024)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if rec.Status != Unpaid {
		t.Errorf("status = %q, want UNPAID", rec.Status)
	}
	if got := len(e.store.TransactionsByPaymentKey("M1-3-2024")); got != 0 {
		t.Errorf("linked entries after unpaid toggle = %d, want 0", got)
	}
	if got := len(e.store.transactions); got != 1 {
		t.Fatalf("transactions = %d, want only the manual entry", got)
	}
	if e.store.transactions[0].Category != "Sewa" {
		t.Errorf("surviving entry = %+v", e.store.transactions[0])
	}
}

func TestTogglePayment_LedgerMatrixConsistency(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad", "1", "2023-01-15")
	addTestMember(e.store, "M2", "Siti", "2", "2023-05-20")

	// An arbitrary toggle sequence, including repeats.
	seq := []struct {
		member string
		month  int
	}{
		{"M1", 0}, {"M1", 1}, {"M2", 5}, {"M1", 0}, {"M2", 5}, {"M2", 5}, {"M1", 0}, {"M1", 0},
	}
	for _, s := range seq {
		if _, err := e.TogglePayment(s.member, s.month, 2024); err != nil {
			t.Fatalf("TogglePayment(%s, %d): %v", s.member, s.month, err)
		}
	}

	for _, p := range e.store.payments {
		linked := len(e.store.TransactionsByPaymentKey(p.Key()))
		if p.Status == Paid && linked != 1 {
			t.Errorf("%s is PAID with %d linked entries", p.Key(), linked)
		}
		if p.Status == Unpaid && linked != 0 {
			t.Errorf("%s is UNPAID with %d linked entries", p.Key(), linked)
		}
	}
	if err := e.store.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants: %v", err)
	}
}

func TestTogglePayment_NaturalKeyStaysUnique(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad", "1", "2023-01-15")

	for range 5 {
		if _, err := e.TogglePayment("M1", 7, 2024); err != nil {
			t.Fatalf("TogglePayment: %v", err)
		}
	}

	seen := make(map[string]int)
	for _, p := range e.store.payments {
		seen[p.Key()]++
	}
	for key, n := range seen {
		if n > 1 {
			t.Errorf("natural key %s appears %d times", key, n)
		}
	}
}

func TestTogglePayment_TwoMonthsAreIndependent(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad", "1", "2023-01-15")

	if _, err := e.TogglePayment("M1", 0, 2024); err != nil {
		t.Fatalf("toggle month 0: %v", err)
	}
	if _, err := e.TogglePayment("M1", 1, 2024); err != nil {
		t.Fatalf("toggle month 1: %v", err)
	}

	if got := len(e.store.payments); got != 2 {
		t.Errorf("payment records = %d, want 2", got)
	}
	if got := len(e.store.TransactionsByPaymentKey("M1-0-2024")); got != 1 {
		t.Errorf("linked entries for month 0 = %d, want 1", got)
	}
	if got := len(e.store.TransactionsByPaymentKey("M1-1-2024")); got != 1 {
		t.Errorf("linked entries for month 1 = %d, want 1", got)
	}
}

func TestTogglePayment_Errors(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad", "1", "2023-05-15")

	testCases := []struct {
		name    string
		member  string
		month   int
		year    int
		wantErr error
	}{
		{name: "unknown member", member: "ghost", month: 0, year: 2024, wantErr: ErrNotFound},
		{name: "month out of range", member: "M1", month: 12, year: 2024, wantErr: ErrInvalidInput},
		{name: "negative month", member: "M1", month: -1, year: 2024, wantErr: ErrInvalidInput},
		{name: "year before join", member: "M1", month: 6, year: 2022, wantErr: ErrBeforeJoin},
		{name: "month before join in join year", member: "M1", month: 2, year: 2023, wantErr: ErrBeforeJoin},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.TogglePayment(tc.member, tc.month, tc.year); !errors.Is(err, tc.wantErr) {
				t.Errorf("TogglePayment = %v, want %v", err, tc.wantErr)
			}
		})
	}

	// The join month itself is payable.
	if _, err := e.TogglePayment("M1", 4, 2023); err != nil {
		t.Errorf("join month should be payable: %v", err)
	}
}

func TestDeleteMember_Cascades(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad", "1", "2023-01-15")
	addTestMember(e.store, "M2", "Siti", "2", "2023-05-20")

	if _, err := e.TogglePayment("M1", 0, 2024); err != nil {
		t.Fatalf("TogglePayment: %v", err)
	}
	if _, err := e.TogglePayment("M2", 0, 2024); err != nil {
		t.Fatalf("TogglePayment: %v", err)
	}
	if _, err := e.AddTransaction(Transaction{Type: Expense, Category: "Alatan", Amount: RM(55), Description: "Baju silat", MemberID: "M1"}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	if err := e.DeleteMember("M1"); err != nil {
		t.Fatalf("DeleteMember: %v", err)
	}

	if e.store.Member("M1") != nil {
		t.Error("member still present after delete")
	}
	for _, p := range e.store.payments {
		if p.MemberID == "M1" {
			t.Errorf("dangling payment record %s", p.Key())
		}
	}
	if got := e.store.TransactionsReferencing("M1"); len(got) != 0 {
		t.Errorf("dangling transactions = %d, want 0", len(got))
	}
	// The other member's records are untouched.
	if _, ok := e.store.FindPaymentRecord("M2", 0, 2024); !ok {
		t.Error("unrelated payment record lost in cascade")
	}
	if got := len(e.store.TransactionsByPaymentKey("M2-0-2024")); got != 1 {
		t.Errorf("unrelated linked entry lost, have %d", got)
	}

	if err := e.DeleteMember("M1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestDerivedTransactionsAreImmutable(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad", "1", "2023-01-15")
	if _, err := e.TogglePayment("M1", 0, 2024); err != nil {
		t.Fatalf("TogglePayment: %v", err)
	}
	derived := e.store.TransactionsByPaymentKey("M1-0-2024")[0]

	edited := derived
	edited.Amount = RM(5)
	if err := e.UpdateTransaction(edited); !errors.Is(err, ErrDerivedImmutable) {
		t.Errorf("UpdateTransaction = %v, want ErrDerivedImmutable", err)
	}
	if err := e.DeleteTransaction(derived.ID); !errors.Is(err, ErrDerivedImmutable) {
		t.Errorf("DeleteTransaction = %v, want ErrDerivedImmutable", err)
	}
	if _, err := e.AddTransaction(Transaction{Type: Income, Category: FeeCategory, Amount: RM(30), MemberID: "M1", PaymentKey: "M1-1-2024"}); !errors.Is(err, ErrDerivedImmutable) {
		t.Errorf("AddTransaction with payment key = %v, want ErrDerivedImmutable", err)
	}
}

func TestAddTransaction_Validation(t *testing.T) {
	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad", "1", "2023-01-15")

	testCases := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{name: "zero amount", tx: Transaction{Type: Income, Category: "Derma", Amount: RM(0)}, wantErr: ErrInvalidInput},
		{name: "negative amount", tx: Transaction{Type: Expense, Category: "Sewa", Amount: RM(-10)}, wantErr: ErrInvalidInput},
		{name: "fee category without member", tx: Transaction{Type: Income, Category: FeeCategory, Amount: RM(30)}, wantErr: ErrInvalidInput},
		{name: "unknown member reference", tx: Transaction{Type: Income, Category: "Derma", Amount: RM(10), MemberID: "ghost"}, wantErr: ErrNotFound},
		{name: "bad type", tx: Transaction{Type: "TRANSFER", Category: "Derma", Amount: RM(10)}, wantErr: ErrInvalidInput},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.AddTransaction(tc.tx); !errors.Is(err, tc.wantErr) {
				t.Errorf("AddTransaction = %v, want %v", err, tc.wantErr)
			}
		})
	}

	tx, err := e.AddTransaction(Transaction{Type: Expense, Category: "Sewa", Amount: RM(120), Description: "Sewa dewan Jun"})
	if err != nil {
		t.Fatalf("valid AddTransaction: %v", err)
	}
	if tx.ID == "" {
		t.Error("no id assigned")
	}
	if tx.Date.IsZero() {
		t.Error("no default date assigned")
	}
}

func TestUpdateTransaction(t *testing.T) {
	e := newTestEngine()
	tx, err := e.AddTransaction(Transaction{Type: Expense, Category: "Sewa", Amount: RM(120), Description: "Sewa dewan"})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	tx.Amount = RM(150)
	tx.Description = "Sewa dewan (naik)"
	if err := e.UpdateTransaction(tx); err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}
	if got := e.store.Transaction(tx.ID); !got.Amount.Equal(RM(150)) {
		t.Errorf("amount after update = %s, want RM150.00", got.Amount)
	}

	ghost := tx
	ghost.ID = "ghost"
	if err := e.UpdateTransaction(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTransaction unknown id = %v, want ErrNotFound", err)
	}
}

func TestMemberLifecycle(t *testing.T) {
	e := newTestEngine()

	m, err := e.AddMember(Member{Name: "Ahmad bin Zulkifli", MemberNumber: "7", JoinDate: date.MustParse("2024-01-02")})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if m.ID == "" {
		t.Fatal("no id assigned")
	}

	m.Phone = "012-3456789"
	if err := e.UpdateMember(m); err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}
	if got := e.store.Member(m.ID); got.Phone != "012-3456789" {
		t.Errorf("phone after update = %q", got.Phone)
	}

	if err := e.UpdateMember(Member{ID: "ghost", Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateMember unknown id = %v, want ErrNotFound", err)
	}
	if _, err := e.AddMember(Member{Name: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("AddMember blank name = %v, want ErrInvalidInput", err)
	}

	// Duplicate member numbers are accepted.
	if _, err := e.AddMember(Member{Name: "Siti", MemberNumber: "7"}); err != nil {
		t.Errorf("duplicate member number rejected: %v", err)
	}
}
