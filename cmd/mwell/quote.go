package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"mwell-store/internal/model"
	"mwell-store/internal/pricing"

	"github.com/spf13/cobra"
)

func newQuoteCmd(a *app) *cobra.Command {
	var coupon, payment string

	cmd := &cobra.Command{
		Use:     "quote PRODUCT[:QTY]...",
		Short:   "Price products without a cart",
		Example: "  mwell quote mv-001:2 mc-002 --coupon GIRISHSIR90 --payment CARD",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseQuoteItems(args)
			if err != nil {
				return err
			}

			summary, err := a.client.Quote(cmd.Context(), &model.QuoteRequest{
				Items:         items,
				CouponCode:    coupon,
				PaymentMethod: payment,
			})
			if err != nil {
				return err
			}
			printQuote(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&coupon, "coupon", "", "coupon code to apply")
	cmd.Flags().StringVar(&payment, "payment", string(pricing.PaymentCOD), "payment method: COD, CARD, PHONEPE or PAYTM")
	return cmd
}

// parseQuoteItems reads "id" or "id:qty" arguments; a bare id means one.
func parseQuoteItems(args []string) ([]model.QuoteItem, error) {
	items := make([]model.QuoteItem, 0, len(args))
	for _, arg := range args {
		id, qty, found := strings.Cut(arg, ":")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("invalid item %q: missing product ID", arg)
		}
		quantity := 1
		if found {
			n, err := strconv.Atoi(qty)
			if err != nil {
				return nil, fmt.Errorf("invalid item %q: quantity must be a number", arg)
			}
			quantity = n
		}
		items = append(items, model.QuoteItem{ProductID: id, Quantity: quantity})
	}
	return items, nil
}

func printQuote(out io.Writer, s *pricing.Summary) {
	for _, line := range s.Lines {
		fmt.Fprintf(out, "%-32s %3d x %10s = %10s\n", line.Name, line.Quantity, line.EffectiveUnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
	}
	fmt.Fprintf(out, "%-32s %29s\n", "Subtotal", s.Subtotal.StringFixed(2))
	if s.CouponApplied {
		fmt.Fprintf(out, "%-32s %29s\n", "Coupon discount", "-"+s.CouponDiscount.StringFixed(2))
	}
	fmt.Fprintf(out, "%-32s %29s\n", "Tax", s.Tax.StringFixed(2))
	fmt.Fprintf(out, "%-32s %29s\n", "Handling", s.Handling.StringFixed(2))
	fmt.Fprintf(out, "%-32s %29s\n", "Delivery ("+string(s.PaymentMethod)+")", s.Delivery.StringFixed(2))
	fmt.Fprintf(out, "%-32s %29s\n", "Total", s.Total.StringFixed(2))
}
