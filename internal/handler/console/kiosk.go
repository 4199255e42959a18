package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cafe-kiosk/internal/domain/catalog"
	domorder "cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/handler/receipt"
	"cafe-kiosk/internal/pkg/errs"
	"cafe-kiosk/internal/usecase/commands"
	"cafe-kiosk/internal/usecase/queries"
)

const (
	msgInvalidChoice    = "Invalid choice!"
	msgInvalidCategory  = "Invalid category!"
	msgInvalidItem      = "Invalid item!"
	msgInvalidOption    = "Invalid option! Please pick one of the listed numbers."
	msgInvalidQuantity  = "Invalid quantity! Please enter a whole number greater than zero."
	msgOrderEmpty       = "Your order is empty!"
	msgOrderClosed      = "This order is already closed."
	msgAlreadyPaid      = "This order has already been checked out."
	msgUnexpectedFailed = "Something went wrong. Please try again."
)

// Kiosk is the text-driven front counter. It owns no order state: every
// action goes through the order usecases, so it can be driven by any
// reader/writer pair.
type Kiosk struct {
	in       *lineReader
	out      io.Writer
	commands commands.OrderCommands
	menu     queries.MenuQueries
	orders   queries.OrderQueries
	receipt  *receipt.Renderer
	logger   *slog.Logger
}

func NewKiosk(
	in io.Reader,
	out io.Writer,
	orderCommands commands.OrderCommands,
	menuQueries queries.MenuQueries,
	orderQueries queries.OrderQueries,
	renderer *receipt.Renderer,
	logger *slog.Logger,
) *Kiosk {
	return &Kiosk{
		in:       newLineReader(in),
		out:      out,
		commands: orderCommands,
		menu:     menuQueries,
		orders:   orderQueries,
		receipt:  renderer,
		logger:   logger,
	}
}

// Run drives the kiosk until the patron checks out, exits, or input ends.
// Patron mistakes are never returned as errors.
func (k *Kiosk) Run(ctx context.Context) error {
	current, err := k.orders.CurrentOrder(ctx)
	if err != nil {
		return errs.Wrap(err, "load current order")
	}
	k.printf("=== Welcome to %s ===\n", k.receipt.ShopName())
	k.printf("Time In: %s\n", k.receipt.Clock(current.TimeIn))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		k.printKioskMenu()
		choice, err := k.in.next()
		if err == io.EOF {
			k.farewell()
			return nil
		}
		if err != nil {
			return errs.Wrap(err, "read kiosk choice")
		}

		done, err := k.dispatch(ctx, choice)
		if err == io.EOF {
			k.farewell()
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (k *Kiosk) dispatch(ctx context.Context, choice string) (bool, error) {
	switch choice {
	case "1":
		return false, k.showMenu(ctx)
	case "2":
		return false, k.addItems(ctx)
	case "3":
		return false, k.showOrder(ctx)
	case "4":
		return k.checkout(ctx)
	case "5":
		k.farewell()
		return true, nil
	default:
		k.println(msgInvalidChoice)
		return false, nil
	}
}

func (k *Kiosk) printKioskMenu() {
	k.println("")
	k.println("Kiosk:")
	k.println("1. View Menu")
	k.println("2. Add Item to Order")
	k.println("3. View Current Order")
	k.println("4. Checkout")
	k.println("5. Exit")
	k.printf("Enter your choice: ")
}

func (k *Kiosk) farewell() {
	k.printf("Thank you for visiting %s!\n", k.receipt.ShopName())
}

func (k *Kiosk) showMenu(ctx context.Context) error {
	menu, err := k.menu.ListMenu(ctx)
	if err != nil {
		return errs.Wrap(err, "list menu")
	}

	k.println("")
	k.println("========== Menu ==========")
	for _, c := range menu {
		k.println("")
		k.println(strings.ToUpper(c.Title))
		for _, item := range c.Items {
			k.printf("%s%s - %s\n", item.Name, choiceSummary(item), k.receipt.Amount(item.BasePrice))
			for _, d := range item.Dimensions {
				if isPriced(d) {
					k.printf("   %s: %s\n", d.Name, strings.Join(k.optionLabels(d), ", "))
				}
			}
		}
	}
	k.println("==========================")
	return nil
}

// choiceSummary lists the free choices of an item, e.g. " (Cheese, Sour Cream)".
func choiceSummary(item queries.MenuItemView) string {
	var labels []string
	for _, d := range item.Dimensions {
		if isPriced(d) {
			continue
		}
		for _, o := range d.Options {
			labels = append(labels, o.Label)
		}
	}
	if len(labels) == 0 {
		return ""
	}
	return " (" + strings.Join(labels, ", ") + ")"
}

func isPriced(d queries.DimensionView) bool {
	for _, o := range d.Options {
		if !o.PriceDelta.IsZero() {
			return true
		}
	}
	return false
}

func (k *Kiosk) optionLabels(d queries.DimensionView) []string {
	priced := isPriced(d)
	out := make([]string, 0, len(d.Options))
	for _, o := range d.Options {
		switch {
		case !priced:
			out = append(out, o.Label)
		case o.PriceDelta.IsZero():
			out = append(out, o.Label+" (Base Price)")
		default:
			out = append(out, fmt.Sprintf("%s (+%s)", o.Label, k.receipt.Amount(o.PriceDelta)))
		}
	}
	return out
}

func (k *Kiosk) addItems(ctx context.Context) error {
	menu, err := k.menu.ListMenu(ctx)
	if err != nil {
		return errs.Wrap(err, "list menu")
	}

	for {
		open, err := k.addOneItem(ctx, menu)
		if err != nil {
			return err
		}
		if !open {
			return nil
		}

		more, err := k.askYesNo("Would you like to add more items? (Y/N): ")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// addOneItem walks category, item, each variation dimension and quantity.
// It reports false when the order can no longer take items.
func (k *Kiosk) addOneItem(ctx context.Context, menu []queries.MenuCategoryView) (bool, error) {
	titles := make([]string, len(menu))
	for i, c := range menu {
		titles[i] = c.Title
	}
	categoryPos, err := k.askChoice("Choose Category:", titles, msgInvalidCategory)
	if err != nil {
		return false, err
	}
	category := menu[categoryPos-1]

	names := make([]string, len(category.Items))
	for i, item := range category.Items {
		names[i] = fmt.Sprintf("%s - %s", item.Name, k.receipt.Amount(item.BasePrice))
	}
	itemPos, err := k.askChoice(category.Title+":", names, msgInvalidItem)
	if err != nil {
		return false, err
	}
	kind, err := k.menu.KindAt(ctx, categoryPos, itemPos)
	if err != nil {
		return false, errs.Wrap(err, "map menu position")
	}
	item := category.Items[itemPos-1]

	choices := make([]int, 0, len(item.Dimensions))
	for _, d := range item.Dimensions {
		choice, err := k.askChoice("Select "+d.Name+":", k.optionLabels(d), msgInvalidOption)
		if err != nil {
			return false, err
		}
		choices = append(choices, choice)
	}

	return k.addWithQuantity(ctx, kind, choices)
}

func (k *Kiosk) addWithQuantity(ctx context.Context, kind catalog.Kind, choices []int) (bool, error) {
	for {
		k.printf("Enter quantity: ")
		line, err := k.in.next()
		if err != nil {
			return false, err
		}
		quantity, ok := parseNumber(line)
		if !ok {
			k.println(msgInvalidQuantity)
			continue
		}

		res, err := k.commands.AddItem(ctx, commands.AddItemRequest{Kind: kind, Choices: choices, Quantity: quantity})
		switch {
		case err == nil:
			k.printf("Item added to order! %d x %s\n", res.Quantity, res.DisplayName)
			return true, nil
		case errs.Is(err, domorder.ErrInvalidQuantity):
			k.println(msgInvalidQuantity)
		case errs.Is(err, catalog.ErrInvalidSelection):
			k.println(msgInvalidOption)
			return true, nil
		case errs.Is(err, domorder.ErrOrderClosed):
			k.println(msgOrderClosed)
			return false, nil
		default:
			k.unexpected(ctx, "add item", err)
			return false, nil
		}
	}
}

func (k *Kiosk) showOrder(ctx context.Context) error {
	view, err := k.orders.CurrentOrder(ctx)
	if err != nil {
		return errs.Wrap(err, "load current order")
	}
	if view.IsEmpty() {
		k.println("")
		k.println(msgOrderEmpty)
		return nil
	}

	k.println("")
	k.println("========== Current Order ==========")
	for _, l := range view.Lines {
		k.println(k.receipt.Line(l.Quantity, l.DisplayName, l.TotalPrice))
	}
	k.println("-----------------------------------")
	k.printf("Subtotal: %s\n", k.receipt.Amount(view.Subtotal))
	k.println("===================================")
	return nil
}

func (k *Kiosk) checkout(ctx context.Context) (bool, error) {
	summary, err := k.commands.Checkout(ctx)
	switch {
	case err == nil:
	case errs.Is(err, domorder.ErrAlreadyCheckedOut):
		k.println(msgAlreadyPaid)
		return true, nil
	default:
		k.unexpected(ctx, "checkout", err)
		return false, nil
	}

	hours, minutes := summary.ElapsedHoursMinutes()
	k.println("")
	k.printf("Time Out: %s\n", k.receipt.Clock(summary.TimeOut()))
	k.printf("Time Stayed: %d hour %d minutes\n", hours, minutes)
	if summary.Surcharge().IsPositive() {
		k.println("Applying time-based charges...")
		k.printf("Extra charge for long stay: %s\n", k.receipt.Amount(summary.Surcharge()))
	}
	k.println("")
	if err := k.receipt.Write(k.out, summary); err != nil {
		return true, errs.Wrap(err, "print receipt")
	}
	return true, nil
}

// askChoice prints a numbered list and re-asks until a listed number is entered.
func (k *Kiosk) askChoice(title string, options []string, invalid string) (int, error) {
	for {
		k.println("")
		k.println(title)
		for i, o := range options {
			k.printf("%d. %s\n", i+1, o)
		}
		k.printf("Enter choice: ")

		line, err := k.in.next()
		if err != nil {
			return 0, err
		}
		n, ok := parseNumber(line)
		if ok && n >= 1 && n <= len(options) {
			return n, nil
		}
		k.println(invalid)
	}
}

func (k *Kiosk) askYesNo(prompt string) (bool, error) {
	for {
		k.println("")
		k.printf("%s", prompt)
		line, err := k.in.next()
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(line) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		k.println(msgInvalidChoice)
	}
}

func (k *Kiosk) unexpected(ctx context.Context, action string, err error) {
	k.logger.ErrorContext(ctx, action+" failed",
		"error", err,
		"stack", errs.ExtractStackLines(err, 8))
	k.println(msgUnexpectedFailed)
}

func (k *Kiosk) println(s string) {
	fmt.Fprintln(k.out, s)
}

func (k *Kiosk) printf(format string, args ...any) {
	fmt.Fprintf(k.out, format, args...)
}
