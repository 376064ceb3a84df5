package tools

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/hance08/zenith/internal/config"
	"github.com/hance08/zenith/internal/logger"
	"github.com/hance08/zenith/internal/service"
	"github.com/hance08/zenith/internal/store"
	"github.com/shopspring/decimal"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "bank.db"), os.DirFS("../.."))
	if err != nil {
		t.Fatalf("NewStore err=%v", err)
	}
	if err := s.InitSchema(); err != nil {
		t.Fatalf("InitSchema err=%v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return NewRegistry(service.NewService(s, config.NewDefault(), logger.Discard()))
}

// call runs a tool and returns its result re-read as generic JSON.
func call(t *testing.T, r *Registry, name string, args map[string]any) map[string]any {
	t.Helper()
	res, err := r.Call(context.Background(), name, args)
	if err != nil {
		t.Fatalf("Call(%s) err=%v", name, err)
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	return out
}

func createAccount(t *testing.T, r *Registry, name string) string {
	t.Helper()
	out := call(t, r, "create_account", map[string]any{"holder_name": name})
	id, _ := out["account_id"].(string)
	if id == "" {
		t.Fatalf("no account_id in %v", out)
	}
	return id
}

func keys(m map[string]any) string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return strings.Join(ks, ",")
}

func TestToolsCatalogue(t *testing.T) {
	r := newTestRegistry(t)

	var names []string
	for _, tool := range r.Tools() {
		names = append(names, tool.Name)
	}
	want := "create_account,deposit,withdraw,get_balance,get_transactions"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("tools=%s want=%s", got, want)
	}
}

func TestAliceScenario(t *testing.T) {
	r := newTestRegistry(t)

	created := call(t, r, "create_account", map[string]any{"holder_name": "Alice"})
	if keys(created) != "account_id,balance,holder_name,message" {
		t.Fatalf("create_account keys=%s", keys(created))
	}
	if created["message"] != MsgAccountCreated || created["holder_name"] != "Alice" || created["balance"] != 0.0 {
		t.Fatalf("create_account=%v", created)
	}
	id := created["account_id"].(string)

	dep := call(t, r, "deposit", map[string]any{"account_id": id, "amount": 100.0})
	if keys(dep) != "account_id,deposited,message,new_balance" {
		t.Fatalf("deposit keys=%s", keys(dep))
	}
	if dep["message"] != MsgDepositSuccess || dep["deposited"] != 100.0 || dep["new_balance"] != 100.0 {
		t.Fatalf("deposit=%v", dep)
	}

	wd := call(t, r, "withdraw", map[string]any{"account_id": id, "amount": 30.0})
	if keys(wd) != "account_id,message,new_balance,withdrawn" {
		t.Fatalf("withdraw keys=%s", keys(wd))
	}
	if wd["message"] != MsgWithdrawalSuccess || wd["withdrawn"] != 30.0 || wd["new_balance"] != 70.0 {
		t.Fatalf("withdraw=%v", wd)
	}

	bal := call(t, r, "get_balance", map[string]any{"account_id": id})
	if keys(bal) != "account_id,balance,holder_name" || bal["balance"] != 70.0 || bal["holder_name"] != "Alice" {
		t.Fatalf("get_balance=%v", bal)
	}

	hist := call(t, r, "get_transactions", map[string]any{"account_id": id})
	if keys(hist) != "account_id,transaction_count,transactions" || hist["transaction_count"] != 2.0 {
		t.Fatalf("get_transactions=%v", hist)
	}
	txns := hist["transactions"].([]any)
	first := txns[0].(map[string]any)
	second := txns[1].(map[string]any)
	if keys(first) != "amount,created_at,transaction_id,type" {
		t.Fatalf("transaction keys=%s", keys(first))
	}
	if first["type"] != "WITHDRAWAL" || first["amount"] != 30.0 {
		t.Fatalf("first=%v", first)
	}
	if second["type"] != "DEPOSIT" || second["amount"] != 100.0 {
		t.Fatalf("second=%v", second)
	}
	if _, err := store.ParseTimestamp(first["created_at"].(string)); err != nil {
		t.Fatalf("created_at %q err=%v", first["created_at"], err)
	}
}

func TestBusinessErrorsAreResults(t *testing.T) {
	r := newTestRegistry(t)
	id := createAccount(t, r, "Bob")
	call(t, r, "deposit", map[string]any{"account_id": id, "amount": 50})

	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		wantKeys string
		wantErr  string
	}{
		{"zero deposit", "deposit", map[string]any{"account_id": id, "amount": 0}, "error", ErrMsgInvalidAmount},
		{"negative withdraw", "withdraw", map[string]any{"account_id": id, "amount": -5}, "error", ErrMsgInvalidAmount},
		{"unknown deposit", "deposit", map[string]any{"account_id": "nope", "amount": 5}, "account_id,error", ErrMsgAccountNotFound},
		{"unknown withdraw", "withdraw", map[string]any{"account_id": "nope", "amount": 5}, "account_id,error", ErrMsgAccountNotFound},
		{"unknown balance", "get_balance", map[string]any{"account_id": "nope"}, "account_id,error", ErrMsgAccountNotFound},
		{"unknown history", "get_transactions", map[string]any{"account_id": "nope"}, "account_id,error", ErrMsgAccountNotFound},
		{"overdraw", "withdraw", map[string]any{"account_id": id, "amount": 80}, "balance,error,requested", ErrMsgInsufficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := call(t, r, tt.tool, tt.args)
			if keys(out) != tt.wantKeys || out["error"] != tt.wantErr {
				t.Fatalf("got=%v want keys=%s error=%s", out, tt.wantKeys, tt.wantErr)
			}
		})
	}

	over := call(t, r, "withdraw", map[string]any{"account_id": id, "amount": 80})
	if over["balance"] != 50.0 || over["requested"] != 80.0 {
		t.Fatalf("overdraw=%v", over)
	}
	if miss := call(t, r, "get_balance", map[string]any{"account_id": "nope"}); miss["account_id"] != "nope" {
		t.Fatalf("not found=%v", miss)
	}

	bal := call(t, r, "get_balance", map[string]any{"account_id": id})
	if bal["balance"] != 50.0 {
		t.Fatalf("balance after failures=%v want 50", bal["balance"])
	}
}

func TestCallArgumentErrors(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	if _, err := r.Call(ctx, "transfer", nil); !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("unknown tool err=%v", err)
	}

	tests := []struct {
		name      string
		tool      string
		args      map[string]any
		wantParam string
	}{
		{"no holder", "create_account", nil, "holder_name"},
		{"null holder", "create_account", map[string]any{"holder_name": nil}, "holder_name"},
		{"no amount", "deposit", map[string]any{"account_id": "x"}, "amount"},
		{"no account", "withdraw", map[string]any{"amount": 1}, "account_id"},
		{"bad amount", "deposit", map[string]any{"account_id": "x", "amount": "lots"}, ""},
		{"bad limit", "get_transactions", map[string]any{"account_id": "x", "limit": "many"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Call(ctx, tt.tool, tt.args)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("err=%v want *ArgumentError", err)
			}
			if argErr.Tool != tt.tool || argErr.Param != tt.wantParam {
				t.Fatalf("got tool=%s param=%s want tool=%s param=%s", argErr.Tool, argErr.Param, tt.tool, tt.wantParam)
			}
		})
	}
}

func TestLooselyTypedArguments(t *testing.T) {
	r := newTestRegistry(t)
	id := createAccount(t, r, "Carol")

	dep := call(t, r, "deposit", map[string]any{"account_id": id, "amount": "12.50"})
	if dep["new_balance"] != 12.5 {
		t.Fatalf("string amount deposit=%v", dep)
	}
	call(t, r, "deposit", map[string]any{"account_id": id, "amount": json.Number("0.1")})
	dep = call(t, r, "deposit", map[string]any{"account_id": id, "amount": json.Number("0.2")})
	if dep["new_balance"] != 12.8 {
		t.Fatalf("json.Number deposit=%v", dep)
	}

	hist := call(t, r, "get_transactions", map[string]any{"account_id": id, "limit": 2.0})
	if hist["transaction_count"] != 2.0 {
		t.Fatalf("float limit=%v", hist)
	}
	hist = call(t, r, "get_transactions", map[string]any{"account_id": id, "limit": "1"})
	if hist["transaction_count"] != 1.0 {
		t.Fatalf("string limit=%v", hist)
	}
}

func TestGetTransactionsLimitDefault(t *testing.T) {
	r := newTestRegistry(t)
	id := createAccount(t, r, "Dan")
	for i := 0; i < 12; i++ {
		call(t, r, "deposit", map[string]any{"account_id": id, "amount": 1})
	}

	tests := []struct {
		name string
		args map[string]any
		want float64
	}{
		{"omitted", map[string]any{"account_id": id}, 10},
		{"explicit", map[string]any{"account_id": id, "limit": 3}, 3},
		{"zero", map[string]any{"account_id": id, "limit": 0}, 10},
		{"larger than history", map[string]any{"account_id": id, "limit": 50}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := call(t, r, "get_transactions", tt.args)
			if out["transaction_count"] != tt.want || float64(len(out["transactions"].([]any))) != tt.want {
				t.Fatalf("count=%v want %v", out["transaction_count"], tt.want)
			}
		})
	}

	empty := createAccount(t, r, "Erin")
	out := call(t, r, "get_transactions", map[string]any{"account_id": empty})
	if out["transaction_count"] != 0.0 || len(out["transactions"].([]any)) != 0 {
		t.Fatalf("empty history=%v", out)
	}
}

func TestLimitMustBeWhole(t *testing.T) {
	r := newTestRegistry(t)
	id := createAccount(t, r, "Faye")
	for i := 0; i < 4; i++ {
		call(t, r, "deposit", map[string]any{"account_id": id, "amount": 1})
	}

	for _, limit := range []any{3.0, json.Number("3.0"), json.Number("3"), "3.00"} {
		out := call(t, r, "get_transactions", map[string]any{"account_id": id, "limit": limit})
		if out["transaction_count"] != 3.0 {
			t.Fatalf("limit=%#v count=%v want 3", limit, out["transaction_count"])
		}
	}

	for _, limit := range []any{2.5, json.Number("2.5"), "2.5", json.Number("1e20")} {
		_, err := r.Call(context.Background(), "get_transactions", map[string]any{"account_id": id, "limit": limit})
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("limit=%#v err=%v want *ArgumentError", limit, err)
		}
	}
}

func TestMoneyBeyondFloatRangeStaysReadable(t *testing.T) {
	r := newTestRegistry(t)
	id := createAccount(t, r, "Gus")

	for i := 0; i < 2; i++ {
		if _, err := r.Call(context.Background(), "deposit", map[string]any{"account_id": id, "amount": json.Number("1e308")}); err != nil {
			t.Fatalf("deposit %d err=%v", i, err)
		}
	}

	res, err := r.Call(context.Background(), "get_balance", map[string]any{"account_id": id})
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal err=%v", err)
	}

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		t.Fatal(err)
	}
	got, err := decimal.NewFromString(out["balance"].(json.Number).String())
	if err != nil {
		t.Fatal(err)
	}
	if want := decimal.RequireFromString("2e308"); !got.Equal(want) {
		t.Fatalf("balance=%s want %s", got, want)
	}
}

func TestMoneyKeepsExactDigits(t *testing.T) {
	r := newTestRegistry(t)
	id := createAccount(t, r, "Hal")
	call(t, r, "deposit", map[string]any{"account_id": id, "amount": json.Number("0.1")})

	res, err := r.Call(context.Background(), "deposit", map[string]any{"account_id": id, "amount": json.Number("0.2")})
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := json.Marshal(res)
	if !strings.Contains(string(raw), `"new_balance":0.3`) {
		t.Fatalf("body=%s want new_balance 0.3", raw)
	}
}
