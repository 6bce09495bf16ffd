package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/semagency/orderbot/internal/domain/model"
)

// ActionKind enumerates every button action the bot can receive.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionService
	ActionMyOrders
	ActionPromoYes
	ActionPromoNo
	ActionComplexity
	ActionBackToMenu
	ActionCheckSubscription
	ActionPay
	ActionPaymentDone
	ActionCancelOrder
	ActionAdminApprove
	ActionAdminReject
	ActionAdminPayConfirm
	ActionAdminPayReject
	ActionAcceptTerms
	ActionRejectTerms
	ActionTargetPlatform
	ActionStartChat
	ActionAdminChat
	ActionContactUser
)

// Action is the decoded form of a callback payload. Kind determines which of
// the payload fields is meaningful.
type Action struct {
	Kind       ActionKind
	Service    model.Service
	Complexity model.Complexity
	Platform   string
	OrderID    int64
	UserID     int64
}

// Callback payload prefixes. The wire format is a flat string tag so that
// keyboards stay debuggable in raw updates; decoding happens exactly once here.
const (
	prefixService        = "service_"
	prefixComplexity     = "complexity_"
	prefixTargetPlatform = "target_platform_"
	prefixPay            = "pay_"
	prefixPaymentDone    = "payment_done_"
	prefixAdminApprove   = "admin_approve_"
	prefixAdminReject    = "admin_reject_"
	prefixAdminPayOK     = "admin_pay_confirm_"
	prefixAdminPayNo     = "admin_pay_reject_"
	prefixAdminChat      = "admin_chat_"
	prefixContactUser    = "contact_user_"

	dataMyOrders          = "my_orders"
	dataPromoYes          = "promo_yes"
	dataPromoNo           = "promo_no"
	dataBackToMenu        = "back_to_menu"
	dataCheckSubscription = "check_subscription"
	dataCancelOrder       = "cancel_order"
	dataAcceptTerms       = "accept_terms"
	dataRejectTerms       = "reject_terms"
	dataStartChat         = "start_chat_with_admin"

	// TargetPlatformOther asks the customer to type the platform by hand.
	TargetPlatformOther = "other"
)

// ParseAction decodes a raw callback payload into a closed action variant.
func ParseAction(data string) (Action, error) {
	switch data {
	case dataMyOrders:
		return Action{Kind: ActionMyOrders}, nil
	case dataPromoYes:
		return Action{Kind: ActionPromoYes}, nil
	case dataPromoNo:
		return Action{Kind: ActionPromoNo}, nil
	case dataBackToMenu:
		return Action{Kind: ActionBackToMenu}, nil
	case dataCheckSubscription:
		return Action{Kind: ActionCheckSubscription}, nil
	case dataCancelOrder:
		return Action{Kind: ActionCancelOrder}, nil
	case dataAcceptTerms:
		return Action{Kind: ActionAcceptTerms}, nil
	case dataRejectTerms:
		return Action{Kind: ActionRejectTerms}, nil
	case dataStartChat:
		return Action{Kind: ActionStartChat}, nil
	}

	switch {
	case strings.HasPrefix(data, prefixService):
		return Action{Kind: ActionService, Service: model.Service(strings.TrimPrefix(data, prefixService))}, nil
	case strings.HasPrefix(data, prefixComplexity):
		return Action{Kind: ActionComplexity, Complexity: model.Complexity(strings.TrimPrefix(data, prefixComplexity))}, nil
	case strings.HasPrefix(data, prefixTargetPlatform):
		return Action{Kind: ActionTargetPlatform, Platform: strings.TrimPrefix(data, prefixTargetPlatform)}, nil
	case strings.HasPrefix(data, prefixPay):
		return parseOrderAction(ActionPay, data, prefixPay)
	case strings.HasPrefix(data, prefixPaymentDone):
		return parseOrderAction(ActionPaymentDone, data, prefixPaymentDone)
	case strings.HasPrefix(data, prefixAdminApprove):
		return parseOrderAction(ActionAdminApprove, data, prefixAdminApprove)
	case strings.HasPrefix(data, prefixAdminReject):
		return parseOrderAction(ActionAdminReject, data, prefixAdminReject)
	case strings.HasPrefix(data, prefixAdminPayOK):
		return parseOrderAction(ActionAdminPayConfirm, data, prefixAdminPayOK)
	case strings.HasPrefix(data, prefixAdminPayNo):
		return parseOrderAction(ActionAdminPayReject, data, prefixAdminPayNo)
	case strings.HasPrefix(data, prefixAdminChat):
		return parseUserAction(ActionAdminChat, data, prefixAdminChat)
	case strings.HasPrefix(data, prefixContactUser):
		return parseUserAction(ActionContactUser, data, prefixContactUser)
	}

	return Action{}, fmt.Errorf("unknown callback payload %q", data)
}

func parseOrderAction(kind ActionKind, data, prefix string) (Action, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return Action{}, fmt.Errorf("invalid order id in %q", data)
	}
	return Action{Kind: kind, OrderID: id}, nil
}

func parseUserAction(kind ActionKind, data, prefix string) (Action, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return Action{}, fmt.Errorf("invalid user id in %q", data)
	}
	return Action{Kind: kind, UserID: id}, nil
}

// Data encodes the action back to its wire payload for keyboard construction.
func (a Action) Data() string {
	switch a.Kind {
	case ActionService:
		return prefixService + string(a.Service)
	case ActionComplexity:
		return prefixComplexity + string(a.Complexity)
	case ActionTargetPlatform:
		return prefixTargetPlatform + a.Platform
	case ActionPay:
		return prefixPay + strconv.FormatInt(a.OrderID, 10)
	case ActionPaymentDone:
		return prefixPaymentDone + strconv.FormatInt(a.OrderID, 10)
	case ActionAdminApprove:
		return prefixAdminApprove + strconv.FormatInt(a.OrderID, 10)
	case ActionAdminReject:
		return prefixAdminReject + strconv.FormatInt(a.OrderID, 10)
	case ActionAdminPayConfirm:
		return prefixAdminPayOK + strconv.FormatInt(a.OrderID, 10)
	case ActionAdminPayReject:
		return prefixAdminPayNo + strconv.FormatInt(a.OrderID, 10)
	case ActionAdminChat:
		return prefixAdminChat + strconv.FormatInt(a.UserID, 10)
	case ActionContactUser:
		return prefixContactUser + strconv.FormatInt(a.UserID, 10)
	case ActionMyOrders:
		return dataMyOrders
	case ActionPromoYes:
		return dataPromoYes
	case ActionPromoNo:
		return dataPromoNo
	case ActionBackToMenu:
		return dataBackToMenu
	case ActionCheckSubscription:
		return dataCheckSubscription
	case ActionCancelOrder:
		return dataCancelOrder
	case ActionAcceptTerms:
		return dataAcceptTerms
	case ActionRejectTerms:
		return dataRejectTerms
	case ActionStartChat:
		return dataStartChat
	}
	return ""
}
