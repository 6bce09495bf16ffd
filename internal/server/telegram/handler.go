package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/semagency/orderbot/internal/config"
	"github.com/semagency/orderbot/internal/domain/model"
	"github.com/semagency/orderbot/internal/session"
	"github.com/semagency/orderbot/internal/usecase"
	"github.com/semagency/orderbot/internal/worker"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
)

// Facade is the subset of application operations the transport needs.
type Facade interface {
	SubmitOrder(ctx context.Context, draft usecase.Draft) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	PendingOrders(ctx context.Context, actorID int64) ([]model.Order, error)
	InitiatePayment(ctx context.Context, orderID int64) (*model.Order, error)
	ConfirmPayment(ctx context.Context, orderID, actorID int64) (*model.Order, error)
	RejectPayment(ctx context.Context, orderID, actorID int64) (*model.Order, error)
	ApproveOrder(ctx context.Context, orderID, actorID int64) (*model.Order, error)
	RejectOrder(ctx context.Context, orderID, actorID int64) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID int64) error
	PromoDiscount(code string) (float64, error)
}

const (
	msgGenericError    = "Something went wrong, please try again."
	msgContinueOrStart = "Please continue the current step or restart with /start."
	msgNoAdminRights   = "You don't have admin rights!"
	msgMainMenu        = "Welcome! Choose a service:"
)

// Handler routes inbound chat events through the conversation flow and into
// the application facade. One update is one unit of work; every error is
// converted to a user-facing message here and never crashes the process.
type Handler struct {
	facade   Facade
	sessions *session.Manager
	sender   Sender
	members  MembershipChecker
	notifier *worker.Notifier
	cfg      *config.Config
	logger   *slog.Logger
}

// NewHandler constructs the transport handler.
func NewHandler(
	facade Facade,
	sessions *session.Manager,
	sender Sender,
	members MembershipChecker,
	notifier *worker.Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		facade:   facade,
		sessions: sessions,
		sender:   sender,
		members:  members,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// HandleUpdate dispatches one inbound transport event.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	}
}

// --- message routing ---

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			h.cmdStart(ctx, userID)
		case "admin":
			h.cmdAdmin(ctx, userID)
		case "stopchat":
			h.sessions.StopRelay(userID)
			h.reply(ctx, userID, "Chat ended.", nil)
		default:
			h.reply(ctx, userID, msgContinueOrStart, nil)
		}
		return
	}

	sess := h.sessions.Get(userID)

	// Relay takes precedence over form input for free text; state-bound
	// uploads (receipts) are still handled below.
	if sess.RelayRole != session.RelayNone && msg.Text != "" {
		h.relayMessage(ctx, userID, sess, msg.Text)
		return
	}

	switch sess.State {
	case session.StateWaitingColors:
		h.onColors(ctx, userID, sess, msg.Text)
	case session.StateWaitingDetails:
		h.onDetails(ctx, userID, sess, msg.Text)
	case session.StateWaitingTargetPlatform:
		h.onTargetPlatform(ctx, userID, sess, msg.Text)
	case session.StateWaitingTargetDetails:
		h.onTargetDetails(ctx, userID, sess, msg.Text)
	case session.StateWaitingPromoCode:
		h.onPromoCode(ctx, userID, sess, msg.Text)
	case session.StateWaitingReceipt:
		h.onReceipt(ctx, userID, sess, msg)
	default:
		h.reply(ctx, userID, msgContinueOrStart, nil)
	}
}

func (h *Handler) cmdStart(ctx context.Context, userID int64) {
	if !h.members.IsMember(ctx, userID) {
		kb := subscriptionKeyboard(h.cfg.RequiredChannelLink)
		h.reply(ctx, userID, "Please subscribe to our channel first!", &kb)
		return
	}
	h.sessions.Clear(userID)
	h.sessions.Get(userID)
	kb := termsKeyboard()
	h.reply(ctx, userID, termsText(h.cfg.DepositPercent), &kb)
}

func (h *Handler) cmdAdmin(ctx context.Context, userID int64) {
	orders, err := h.facade.PendingOrders(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUnauthorized) {
			h.reply(ctx, userID, msgNoAdminRights, nil)
			return
		}
		h.logger.Error("pending orders lookup failed", slog.String("error", err.Error()))
		h.reply(ctx, userID, msgGenericError, nil)
		return
	}
	if len(orders) == 0 {
		h.reply(ctx, userID, "No pending orders right now.", nil)
		return
	}
	for _, o := range orders {
		text := fmt.Sprintf("🆔 Order ID: %d\n👤 User ID: %d\n🔧 Service: %s\n💰 Price: %d\n📈 Status: %s",
			o.ID, o.UserID, o.Service, o.TotalPrice, o.Status)
		orderKb := adminOrderKeyboard(o.ID)
		h.reply(ctx, userID, text, &orderKb)
		chatKb := adminChatKeyboard(o.UserID)
		h.reply(ctx, userID, fmt.Sprintf("Chat with user %d:", o.UserID), &chatKb)
	}
}

func (h *Handler) onColors(ctx context.Context, userID int64, sess *session.Session, text string) {
	colors, ok := usecase.CleanFreeText(text, usecase.MinColorsLen)
	if !ok {
		h.reply(ctx, userID, "Colors must be at least 3 characters long. Please try again:", nil)
		return
	}
	sess.Colors = colors
	sess.State = session.StateWaitingDetails
	kb := backToMenuKeyboard()
	h.reply(ctx, userID, "Describe any additional details for the design:", &kb)
}

func (h *Handler) onDetails(ctx context.Context, userID int64, sess *session.Session, text string) {
	details, ok := usecase.CleanFreeText(text, usecase.MinDetailsLen)
	if !ok {
		h.reply(ctx, userID, "Details must be at least 5 characters long. Please try again:", nil)
		return
	}
	sess.Details = details
	sess.State = session.StateWaitingPromoChoice
	kb := promoChoiceKeyboard()
	h.reply(ctx, userID, "Do you have a promo code?", &kb)
}

func (h *Handler) onTargetPlatform(ctx context.Context, userID int64, sess *session.Session, text string) {
	platform, ok := usecase.CleanFreeText(text, usecase.MinPlatformLen)
	if !ok {
		h.reply(ctx, userID, "Platform name must be at least 3 characters long. Please try again:", nil)
		return
	}
	sess.TargetPlatform = platform
	sess.State = session.StateWaitingTargetDetails
	kb := backToMenuKeyboard()
	h.reply(ctx, userID, "Describe the ad design you need:", &kb)
}

func (h *Handler) onTargetDetails(ctx context.Context, userID int64, sess *session.Session, text string) {
	details, ok := usecase.CleanFreeText(text, usecase.MinDetailsLen)
	if !ok {
		h.reply(ctx, userID, "Details must be at least 5 characters long. Please try again:", nil)
		return
	}
	sess.Details = details
	sess.State = session.StateWaitingPromoChoice
	kb := promoChoiceKeyboard()
	h.reply(ctx, userID, "Do you have a promo code?", &kb)
}

func (h *Handler) onPromoCode(ctx context.Context, userID int64, sess *session.Session, text string) {
	code := strings.TrimSpace(text)
	kb := backToMenuKeyboard()
	if code == "" {
		h.reply(ctx, userID, "A promo code can't be empty. Please enter it again:", &kb)
		return
	}
	if strings.HasPrefix(code, "/") {
		h.reply(ctx, userID, "Please don't enter commands as a promo code. Try again or go back to the menu:", &kb)
		return
	}
	discount, err := h.facade.PromoDiscount(code)
	if err != nil {
		h.reply(ctx, userID, "Invalid promo code! Please enter it again or go back:", &kb)
		return
	}
	sess.PromoCode = code
	sess.PromoDiscount = discount
	h.submitOrder(ctx, userID, sess)
}

// submitOrder persists the collected draft and starts the payment handshake.
// On persistence failure the session is left untouched so the customer does
// not re-enter already collected answers.
func (h *Handler) submitOrder(ctx context.Context, userID int64, sess *session.Session) {
	draft := usecase.Draft{
		UserID:         userID,
		Service:        sess.Service,
		TargetPlatform: sess.TargetPlatform,
		Details:        sess.Details,
		Colors:         sess.Colors,
		Complexity:     sess.Complexity,
		PromoCode:      sess.PromoCode,
		PromoDiscount:  sess.PromoDiscount,
	}

	order, err := h.facade.SubmitOrder(ctx, draft)
	if err != nil {
		h.logger.Error("order submission failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		h.reply(ctx, userID, msgGenericError, nil)
		return
	}

	sess.OrderID = order.ID
	sess.TotalPrice = order.TotalPrice
	sess.UpfrontPrice = order.UpfrontPrice
	sess.State = session.StateWaitingPaymentConfirmation

	receipt := h.receiptText(order)
	if h.cfg.DoubleApproval {
		kb := backToMenuKeyboard()
		h.reply(ctx, userID, receipt+"\n\n⏳ Waiting for admin approval.", &kb)
	} else {
		kb := paymentConfirmationKeyboard(order.ID)
		h.reply(ctx, userID, receipt+"\n\n✅ Confirm the order and proceed to payment.", &kb)
	}

	adminKb := adminOrderKeyboard(order.ID)
	h.notifier.Enqueue(worker.Outbound{
		ChatID: h.cfg.AdminID,
		Text:   receipt + "\n\nAwaiting admin review:",
		Markup: &adminKb,
	})
}

func (h *Handler) onReceipt(ctx context.Context, userID int64, sess *session.Session, msg *tgbotapi.Message) {
	orderID := sess.ReceiptOrderID
	if len(msg.Photo) == 0 && msg.Document == nil {
		h.reply(ctx, userID, "Please send the payment receipt as a photo or a document.", nil)
		return
	}

	caption := fmt.Sprintf("🧾 Payment receipt\nOrder ID: %d\nUser: %d", orderID, userID)
	kb := adminPaymentKeyboard(orderID)

	var err error
	if len(msg.Photo) > 0 {
		fileID := msg.Photo[len(msg.Photo)-1].FileID
		err = h.sender.SendPhoto(ctx, h.cfg.AdminID, fileID, caption, &kb)
	} else {
		err = h.sender.SendDocument(ctx, h.cfg.AdminID, msg.Document.FileID, caption, &kb)
	}
	if err != nil {
		h.logger.Error("receipt forwarding failed", slog.Int64("order_id", orderID), slog.String("error", err.Error()))
		h.reply(ctx, userID, msgGenericError, nil)
		return
	}

	menuKb := backToMenuKeyboard()
	h.reply(ctx, userID, "Receipt received. Your order will be reviewed shortly.", &menuKb)
	h.sessions.Reset(userID)
}

func (h *Handler) relayMessage(ctx context.Context, userID int64, sess *session.Session, text string) {
	var target int64
	var prefix string
	switch sess.RelayRole {
	case session.RelayAdmin:
		target = sess.RelayTarget
		prefix = "Admin: "
	case session.RelayUser:
		target = h.cfg.AdminID
		prefix = fmt.Sprintf("User %d: ", userID)
	default:
		return
	}

	if err := h.sender.Send(ctx, worker.Outbound{ChatID: target, Text: prefix + text}); err != nil {
		h.logger.Error("relay delivery failed", slog.Int64("target", target), slog.String("error", err.Error()))
		h.reply(ctx, userID, "Message not delivered, please try again.", nil)
		return
	}
	h.reply(ctx, userID, "Message delivered.", nil)
}

// --- callback routing ---

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil {
		return
	}
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	if err := h.sender.AckCallback(ctx, cb.ID); err != nil {
		h.logger.Warn("callback ack failed", slog.String("error", err.Error()))
	}

	action, err := ParseAction(cb.Data)
	if err != nil {
		h.logger.Warn("unparseable callback", slog.String("data", cb.Data))
		return
	}

	sess := h.sessions.Get(userID)

	switch action.Kind {
	case ActionService:
		h.onServiceChosen(ctx, chatID, messageID, sess, action.Service)
	case ActionComplexity:
		h.onComplexityChosen(ctx, chatID, messageID, sess, action.Complexity)
	case ActionTargetPlatform:
		h.onTargetPlatformChosen(ctx, chatID, messageID, sess, action.Platform)
	case ActionPromoYes:
		sess.State = session.StateWaitingPromoCode
		h.edit(ctx, chatID, messageID, "Enter your promo code:", ptr(backToMenuKeyboard()))
	case ActionPromoNo:
		sess.PromoCode = ""
		sess.PromoDiscount = 0
		h.submitOrder(ctx, userID, sess)
	case ActionBackToMenu:
		h.sessions.Reset(userID)
		h.edit(ctx, chatID, messageID, msgMainMenu, ptr(mainMenuKeyboard()))
		h.reply(ctx, userID, "Tap below to contact the admin:", ptr(userChatKeyboard()))
	case ActionCheckSubscription:
		h.onCheckSubscription(ctx, userID, chatID, messageID)
	case ActionAcceptTerms:
		sess.TermsAccepted = true
		sess.State = session.StateMainMenu
		h.edit(ctx, chatID, messageID, msgMainMenu, ptr(mainMenuKeyboard()))
	case ActionRejectTerms:
		h.edit(ctx, chatID, messageID, "You declined the terms. You need to accept them to place orders.", nil)
	case ActionMyOrders:
		h.onMyOrders(ctx, userID, chatID, messageID)
	case ActionPay:
		h.onPay(ctx, chatID, messageID, action.OrderID)
	case ActionPaymentDone:
		sess.ReceiptOrderID = action.OrderID
		sess.State = session.StateWaitingReceipt
		h.edit(ctx, chatID, messageID, "Please send the payment receipt here as a photo or a file.", ptr(backToMenuKeyboard()))
	case ActionCancelOrder:
		h.onCancelOrder(ctx, userID, chatID, messageID, sess)
	case ActionAdminApprove:
		h.onAdminApprove(ctx, userID, chatID, messageID, action.OrderID)
	case ActionAdminReject:
		h.onAdminReject(ctx, userID, chatID, messageID, action.OrderID)
	case ActionAdminPayConfirm:
		h.onAdminPayConfirm(ctx, userID, chatID, messageID, action.OrderID)
	case ActionAdminPayReject:
		h.onAdminPayReject(ctx, userID, chatID, messageID, action.OrderID)
	case ActionStartChat:
		h.sessions.StartRelay(userID, session.RelayUser, h.cfg.AdminID)
		h.reply(ctx, userID, "Chat with the admin started. Type your message or finish with /stopchat.", nil)
	case ActionAdminChat, ActionContactUser:
		if userID != h.cfg.AdminID {
			h.reply(ctx, userID, msgNoAdminRights, nil)
			return
		}
		h.sessions.StartRelay(userID, session.RelayAdmin, action.UserID)
		h.reply(ctx, userID, fmt.Sprintf("Chat with user %d started. Type your message or finish with /stopchat.", action.UserID), nil)
	}
}

func (h *Handler) onServiceChosen(ctx context.Context, chatID int64, messageID int, sess *session.Session, service model.Service) {
	sess.Service = service
	switch service {
	case model.ServiceDesign:
		sess.State = session.StateWaitingComplexity
		h.edit(ctx, chatID, messageID, "Choose the design complexity:", ptr(complexityKeyboard()))
	case model.ServiceTarget:
		sess.State = session.StateWaitingTargetPlatform
		h.edit(ctx, chatID, messageID, "Choose the ad platform or tap 'Other':", ptr(targetPlatformKeyboard()))
	default:
		sess.State = session.StateWaitingDetails
		h.edit(ctx, chatID, messageID, "Describe your order:", ptr(backToMenuKeyboard()))
	}
}

func (h *Handler) onComplexityChosen(ctx context.Context, chatID int64, messageID int, sess *session.Session, complexity model.Complexity) {
	if sess.State != session.StateWaitingComplexity {
		h.edit(ctx, chatID, messageID, msgContinueOrStart, nil)
		return
	}
	sess.Complexity = complexity
	sess.State = session.StateWaitingColors
	h.edit(ctx, chatID, messageID,
		"List the colors for the design (e.g. blue, white, black) and whether it should be light, dark or mixed:",
		ptr(backToMenuKeyboard()))
}

func (h *Handler) onTargetPlatformChosen(ctx context.Context, chatID int64, messageID int, sess *session.Session, platform string) {
	if platform == TargetPlatformOther {
		sess.State = session.StateWaitingTargetPlatform
		h.edit(ctx, chatID, messageID, "Type the platform or audience (e.g. 'Facebook Ads', 'Telegram'):", ptr(backToMenuKeyboard()))
		return
	}
	sess.TargetPlatform = platform
	sess.State = session.StateWaitingTargetDetails
	h.edit(ctx, chatID, messageID, "Describe the ad design you need:", ptr(backToMenuKeyboard()))
}

func (h *Handler) onCheckSubscription(ctx context.Context, userID, chatID int64, messageID int) {
	if h.members.IsMember(ctx, userID) {
		h.sessions.Reset(userID)
		kb := termsKeyboard()
		h.edit(ctx, chatID, messageID, termsText(h.cfg.DepositPercent), &kb)
		return
	}
	kb := subscriptionKeyboard(h.cfg.RequiredChannelLink)
	h.edit(ctx, chatID, messageID, "Please subscribe to our channel first!", &kb)
}

func (h *Handler) onMyOrders(ctx context.Context, userID, chatID int64, messageID int) {
	orders, err := h.facade.Orders(ctx, userID)
	if err != nil {
		h.logger.Error("orders lookup failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		h.edit(ctx, chatID, messageID, msgGenericError, nil)
		return
	}
	kb := backToMenuKeyboard()
	if len(orders) == 0 {
		h.edit(ctx, chatID, messageID, "You have no orders yet.", &kb)
		return
	}
	var b strings.Builder
	b.WriteString("📋 *Your orders*\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "\n🆔 Order ID: %d\n🔧 Service: %s\n💰 Price: %d\n📈 Status: %s\n", o.ID, o.Service, o.TotalPrice, o.Status)
	}
	h.edit(ctx, chatID, messageID, strings.TrimSpace(b.String()), &kb)
}

func (h *Handler) onPay(ctx context.Context, chatID int64, messageID int, orderID int64) {
	order, err := h.facade.InitiatePayment(ctx, orderID)
	if err != nil {
		h.logger.Error("payment initiation failed", slog.Int64("order_id", orderID), slog.String("error", err.Error()))
		h.edit(ctx, chatID, messageID, msgGenericError, ptr(backToMenuKeyboard()))
		return
	}

	amount := order.UpfrontPrice
	reference := uuid.NewString()
	payLink := fmt.Sprintf(h.cfg.PaymentLinkTemplate, order.ID, amount, reference)

	text := fmt.Sprintf(
		"💳 Card number for payment: `%s`\n\nOr pay via this link:\n[Pay now](%s)\n\n💰 Amount due: %d\n\nAfter paying, tap \"I have paid\" and send the receipt.",
		h.cfg.CardNumber, payLink, amount,
	)
	kb := paymentDoneKeyboard(order.ID)
	h.edit(ctx, chatID, messageID, text, &kb)
}

func (h *Handler) onCancelOrder(ctx context.Context, userID, chatID int64, messageID int, sess *session.Session) {
	orderID := sess.OrderID
	if orderID == 0 {
		h.edit(ctx, chatID, messageID, msgMainMenu, ptr(mainMenuKeyboard()))
		h.sessions.Reset(userID)
		return
	}
	if err := h.facade.CancelOrder(ctx, orderID); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		h.logger.Error("order cancellation failed", slog.Int64("order_id", orderID), slog.String("error", err.Error()))
		h.edit(ctx, chatID, messageID, msgGenericError, nil)
		return
	}
	h.edit(ctx, chatID, messageID, "Order cancelled.", ptr(backToMenuKeyboard()))
	h.sessions.Reset(userID)
}

func (h *Handler) onAdminApprove(ctx context.Context, actorID, chatID int64, messageID int, orderID int64) {
	order, err := h.facade.ApproveOrder(ctx, orderID, actorID)
	if err != nil {
		h.adminActionError(ctx, actorID, chatID, messageID, err)
		return
	}
	h.edit(ctx, chatID, messageID, fmt.Sprintf("Order %d approved.", orderID), nil)

	if h.cfg.DoubleApproval {
		kb := paymentConfirmationKeyboard(order.ID)
		h.notifier.Enqueue(worker.Outbound{
			ChatID: order.UserID,
			Text:   fmt.Sprintf("✅ Your order %d was approved! Confirm it to proceed to payment.", order.ID),
			Markup: &kb,
		})
		return
	}
	h.notifier.Enqueue(worker.Outbound{
		ChatID: order.UserID,
		Text:   fmt.Sprintf("✅ Your order %d was approved!", order.ID),
	})
}

func (h *Handler) onAdminReject(ctx context.Context, actorID, chatID int64, messageID int, orderID int64) {
	order, err := h.facade.RejectOrder(ctx, orderID, actorID)
	if err != nil {
		h.adminActionError(ctx, actorID, chatID, messageID, err)
		return
	}
	h.edit(ctx, chatID, messageID, fmt.Sprintf("Order %d rejected.", orderID), nil)
	h.notifier.Enqueue(worker.Outbound{
		ChatID: order.UserID,
		Text:   fmt.Sprintf("❌ Your order %d was rejected. Contact the admin for details.", order.ID),
	})
}

func (h *Handler) onAdminPayConfirm(ctx context.Context, actorID, chatID int64, messageID int, orderID int64) {
	order, err := h.facade.ConfirmPayment(ctx, orderID, actorID)
	if err != nil {
		h.adminActionError(ctx, actorID, chatID, messageID, err)
		return
	}
	h.edit(ctx, chatID, messageID, "Payment confirmed, the order moved to work.", nil)
	h.notifier.Enqueue(worker.Outbound{
		ChatID: order.UserID,
		Text: "✅ Your payment is confirmed!\n\nYour order is now in progress.\n⏳ *Estimated time*: 1-3 business days depending on complexity.\nYou can contact the admin with any questions.",
	})
}

func (h *Handler) onAdminPayReject(ctx context.Context, actorID, chatID int64, messageID int, orderID int64) {
	order, err := h.facade.RejectPayment(ctx, orderID, actorID)
	if err != nil {
		h.adminActionError(ctx, actorID, chatID, messageID, err)
		return
	}
	h.edit(ctx, chatID, messageID, "Payment rejected.", nil)
	h.notifier.Enqueue(worker.Outbound{
		ChatID: order.UserID,
		Text:   "❌ Your payment was rejected. Please resubmit it or contact the admin.",
	})
}

func (h *Handler) adminActionError(ctx context.Context, actorID, chatID int64, messageID int, err error) {
	if errors.Is(err, domainErrors.ErrUnauthorized) {
		h.reply(ctx, actorID, msgNoAdminRights, nil)
		return
	}
	h.logger.Error("admin action failed", slog.String("error", err.Error()))
	h.edit(ctx, chatID, messageID, msgGenericError, nil)
}

// --- outbound helpers ---

func (h *Handler) reply(ctx context.Context, chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	if err := h.sender.Send(ctx, worker.Outbound{ChatID: chatID, Text: text, Markup: markup}); err != nil {
		h.logger.Error("reply failed", slog.Int64("chat_id", chatID), slog.String("error", err.Error()))
	}
}

func (h *Handler) edit(ctx context.Context, chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	if err := h.sender.Edit(ctx, chatID, messageID, text, markup); err != nil {
		h.logger.Error("message edit failed", slog.Int64("chat_id", chatID), slog.String("error", err.Error()))
	}
}

func (h *Handler) receiptText(order *model.Order) string {
	complexity := "—"
	if order.Complexity != nil {
		c := *order.Complexity
		if c != "" {
			complexity = strings.ToUpper(c[:1]) + c[1:]
		}
	}
	colors := "—"
	if order.Colors != nil && *order.Colors != "" {
		colors = *order.Colors
	}
	promo := "none"
	if order.PromoCode != nil && *order.PromoCode != "" {
		promo = *order.PromoCode
	}
	totalDiscount := int((order.PromoDiscount + order.ReferralDiscount) * 100)

	var b strings.Builder
	fmt.Fprintf(&b, "🧾 *Order receipt*\n\n")
	fmt.Fprintf(&b, "🆔 Order ID: %d\n", order.ID)
	fmt.Fprintf(&b, "👤 Customer: %d\n", order.UserID)
	fmt.Fprintf(&b, "🔧 Service: %s\n", order.Service)
	fmt.Fprintf(&b, "🎨 Colors: %s\n", colors)
	fmt.Fprintf(&b, "📋 Details: %s\n", order.Details)
	fmt.Fprintf(&b, "📈 Complexity: %s\n", complexity)
	fmt.Fprintf(&b, "🎟️ Promo code: %s\n", promo)
	fmt.Fprintf(&b, "💸 Discount: %d%%\n", totalDiscount)
	fmt.Fprintf(&b, "💰 Total price: %d", order.TotalPrice)
	if h.cfg.DepositPercent < 100 {
		fmt.Fprintf(&b, "\n💳 Upfront payment (%d%%): %d", h.cfg.DepositPercent, order.UpfrontPrice)
		fmt.Fprintf(&b, "\nThe remaining %d%% is due when the work is finished.", 100-h.cfg.DepositPercent)
	}
	return b.String()
}

func termsText(depositPercent int) string {
	var b strings.Builder
	b.WriteString("📋 *TERMS OF SERVICE*\n\n")
	b.WriteString("Dear customer, please review the terms before placing an order:\n\n")
	if depositPercent < 100 {
		fmt.Fprintf(&b, "🔹 *Payment*: %d%% upfront once the order is approved, the remaining %d%% before the final version is delivered.\n\n", depositPercent, 100-depositPercent)
	} else {
		b.WriteString("🔹 *Payment*: the full price is paid upfront once the order is approved.\n\n")
	}
	b.WriteString("🔹 *Revisions*: up to 3 minor revisions are free; further changes are billed by complexity.\n\n")
	b.WriteString("🔹 *Deadlines*: depend on complexity and the current queue; you will be told separately.\n\n")
	b.WriteString("🔹 *Cancellation*: full refund before work starts; the upfront payment is kept once work has started.\n\n")
	b.WriteString("🔹 *Promo codes*: each code has its own validity period.\n\n")
	b.WriteString("🔹 *Contact*: reach out any time with questions or to track your order.")
	return b.String()
}

func ptr(kb tgbotapi.InlineKeyboardMarkup) *tgbotapi.InlineKeyboardMarkup {
	return &kb
}
