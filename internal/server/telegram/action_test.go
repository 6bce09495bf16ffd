package telegram

import (
	"testing"

	"github.com/semagency/orderbot/internal/domain/model"
)

func TestParseActionRoundTrip(t *testing.T) {
	actions := []Action{
		{Kind: ActionService, Service: model.ServiceDesign},
		{Kind: ActionService, Service: model.ServiceTarget},
		{Kind: ActionComplexity, Complexity: model.ComplexityMedium},
		{Kind: ActionTargetPlatform, Platform: "Google Ads"},
		{Kind: ActionTargetPlatform, Platform: TargetPlatformOther},
		{Kind: ActionPay, OrderID: 12},
		{Kind: ActionPaymentDone, OrderID: 12},
		{Kind: ActionAdminApprove, OrderID: 3},
		{Kind: ActionAdminReject, OrderID: 3},
		{Kind: ActionAdminPayConfirm, OrderID: 4},
		{Kind: ActionAdminPayReject, OrderID: 4},
		{Kind: ActionAdminChat, UserID: 99},
		{Kind: ActionContactUser, UserID: 99},
		{Kind: ActionMyOrders},
		{Kind: ActionPromoYes},
		{Kind: ActionPromoNo},
		{Kind: ActionBackToMenu},
		{Kind: ActionCheckSubscription},
		{Kind: ActionCancelOrder},
		{Kind: ActionAcceptTerms},
		{Kind: ActionRejectTerms},
		{Kind: ActionStartChat},
	}

	for _, a := range actions {
		parsed, err := ParseAction(a.Data())
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", a.Data(), err)
		}
		if parsed != a {
			t.Fatalf("round trip mismatch for %q: got %+v, want %+v", a.Data(), parsed, a)
		}
	}
}

func TestParseActionWireFormat(t *testing.T) {
	cases := map[string]Action{
		"service_design":      {Kind: ActionService, Service: model.ServiceDesign},
		"complexity_high":     {Kind: ActionComplexity, Complexity: model.ComplexityHigh},
		"pay_7":               {Kind: ActionPay, OrderID: 7},
		"payment_done_7":      {Kind: ActionPaymentDone, OrderID: 7},
		"admin_approve_7":     {Kind: ActionAdminApprove, OrderID: 7},
		"admin_pay_confirm_7": {Kind: ActionAdminPayConfirm, OrderID: 7},
		"admin_chat_42":       {Kind: ActionAdminChat, UserID: 42},
		"my_orders":           {Kind: ActionMyOrders},
	}
	for data, want := range cases {
		got, err := ParseAction(data)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", data, err)
		}
		if got != want {
			t.Fatalf("ParseAction(%q) = %+v, want %+v", data, got, want)
		}
	}
}

func TestParseActionUnknownPayload(t *testing.T) {
	if _, err := ParseAction("garbage"); err == nil {
		t.Fatal("expected error for unknown payload")
	}
}

func TestParseActionMalformedID(t *testing.T) {
	if _, err := ParseAction("pay_abc"); err == nil {
		t.Fatal("expected error for non-numeric order id")
	}
	if _, err := ParseAction("admin_chat_x"); err == nil {
		t.Fatal("expected error for non-numeric user id")
	}
}
