package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/semagency/orderbot/internal/domain/model"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎨 Graphic design", Action{Kind: ActionService, Service: model.ServiceDesign}.Data()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🤖 Bots & automation", Action{Kind: ActionService, Service: model.ServiceContent}.Data()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💻 Web development", Action{Kind: ActionService, Service: model.ServiceWeb}.Data()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Targeted ads design", Action{Kind: ActionService, Service: model.ServiceTarget}.Data()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 My orders", Action{Kind: ActionMyOrders}.Data()),
		),
	)
}

func promoChoiceKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes", Action{Kind: ActionPromoYes}.Data()),
			tgbotapi.NewInlineKeyboardButtonData("❌ No", Action{Kind: ActionPromoNo}.Data()),
		),
	)
}

func complexityKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Minimal", Action{Kind: ActionComplexity, Complexity: model.ComplexityMinimal}.Data()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Medium", Action{Kind: ActionComplexity, Complexity: model.ComplexityMedium}.Data()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("High", Action{Kind: ActionComplexity, Complexity: model.ComplexityHigh}.Data()),
		),
	)
}

func backToMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Main menu", Action{Kind: ActionBackToMenu}.Data()),
		),
	)
}

func subscriptionKeyboard(link string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Subscribe", link),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Check again", Action{Kind: ActionCheckSubscription}.Data()),
		),
	)
}

func termsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Accept", Action{Kind: ActionAcceptTerms}.Data()),
			tgbotapi.NewInlineKeyboardButtonData("❌ Decline", Action{Kind: ActionRejectTerms}.Data()),
		),
	)
}

func paymentConfirmationKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 Pay", Action{Kind: ActionPay, OrderID: orderID}.Data()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel order", Action{Kind: ActionCancelOrder}.Data()),
		),
	)
}

func paymentDoneKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ I have paid", Action{Kind: ActionPaymentDone, OrderID: orderID}.Data()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Main menu", Action{Kind: ActionBackToMenu}.Data()),
		),
	)
}

func adminOrderKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Approve", Action{Kind: ActionAdminApprove, OrderID: orderID}.Data()),
			tgbotapi.NewInlineKeyboardButtonData("❌ Reject", Action{Kind: ActionAdminReject, OrderID: orderID}.Data()),
		),
	)
}

func adminPaymentKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Confirm payment", Action{Kind: ActionAdminPayConfirm, OrderID: orderID}.Data()),
			tgbotapi.NewInlineKeyboardButtonData("❌ Reject payment", Action{Kind: ActionAdminPayReject, OrderID: orderID}.Data()),
		),
	)
}

func targetPlatformKeyboard() tgbotapi.InlineKeyboardMarkup {
	platforms := []string{"Google Ads", "Instagram post", "Facebook Ads", "Telegram"}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(platforms)+1)
	for _, p := range platforms {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p, Action{Kind: ActionTargetPlatform, Platform: p}.Data()),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Other", Action{Kind: ActionTargetPlatform, Platform: TargetPlatformOther}.Data()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func userChatKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✉️ Chat with admin", Action{Kind: ActionStartChat}.Data()),
		),
	)
}

func adminChatKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✉️ Contact user", Action{Kind: ActionAdminChat, UserID: userID}.Data()),
		),
	)
}
