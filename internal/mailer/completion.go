package mailer

import (
	"fmt"

	"github.com/Hosannah10/julidsfashion-admin/internal/models"
	"github.com/Hosannah10/julidsfashion-admin/pkg/view"
)

const fromName = "Juli D's Fashion"

// ShopOrderCompleted is the notice mailed when a shop order flips to
// completed.
func ShopOrderCompleted(from string, o models.ShopOrder) Email {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour order #%d (%s x%d, %s) is ready for pickup.\n\nThank you for shopping with us.\n%s\n",
		o.Name, o.ID, o.WearName, o.Quantity, view.Naira(o.Total), fromName,
	)
	return Email{
		FromName: fromName,
		From:     from,
		To:       []string{o.Email},
		Subject:  fmt.Sprintf("Your order #%d is ready", o.ID),
		Body:     body,
	}
}

// CustomOrderCompleted is the bespoke-order counterpart.
func CustomOrderCompleted(from string, o models.CustomOrder) Email {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour custom order #%d is finished and ready for pickup.\n\nThank you for choosing us.\n%s\n",
		o.Name, o.ID, fromName,
	)
	return Email{
		FromName: fromName,
		From:     from,
		To:       []string{o.Email},
		Subject:  fmt.Sprintf("Your custom order #%d is ready", o.ID),
		Body:     body,
	}
}
