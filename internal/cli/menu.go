// Package cli implements the interactive text menu over the store API. It is
// a thin presentation layer: input parsing and error display live here, all
// business rules live in the domain packages.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Berliner09/bestbuy2/internal/domain/product"
	"github.com/Berliner09/bestbuy2/internal/domain/store"
)

// Menu drives the interactive store menu over a line-oriented terminal.
type Menu struct {
	store *store.Store
	in    *bufio.Scanner
	out   io.Writer
	lg    *zap.Logger
}

// NewMenu creates a menu reading choices from in and writing output to out.
func NewMenu(st *store.Store, in io.Reader, out io.Writer, lg *zap.Logger) *Menu {
	return &Menu{
		store: st,
		in:    bufio.NewScanner(in),
		out:   out,
		lg:    lg,
	}
}

// Run displays the menu and processes choices until the user quits, the
// input ends, or the context is cancelled. Domain errors are rendered to the
// user and the loop resumes.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m.printMenu()
		choice, ok := m.readLine("Please choose a number: ")
		if !ok {
			return m.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.listProducts()
		case "2":
			m.showTotalQuantity()
		case "3":
			m.makeOrder()
		case "4":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, please pick a number from 1 to 4.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "   Store Menu")
	fmt.Fprintln(m.out, "   ----------")
	fmt.Fprintln(m.out, "1. List all products in store")
	fmt.Fprintln(m.out, "2. Show total quantity in store")
	fmt.Fprintln(m.out, "3. Make an order")
	fmt.Fprintln(m.out, "4. Quit")
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) listProducts() {
	fmt.Fprintln(m.out, "------")
	active := m.store.ActiveProducts()
	if len(active) == 0 {
		fmt.Fprintln(m.out, "The store has no active products right now.")
	}
	for i, p := range active {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, p.Describe())
	}
	fmt.Fprintln(m.out, "------")
}

func (m *Menu) showTotalQuantity() {
	fmt.Fprintln(m.out, "------")
	fmt.Fprintf(m.out, "Total quantity of all stocked products: %d\n", m.store.TotalQuantity())
	fmt.Fprintln(m.out, "------")
}

// makeOrder collects (product, amount) pairs until the user enters a blank
// line, then places the order as a single batch.
func (m *Menu) makeOrder() {
	active := m.store.ActiveProducts()
	if len(active) == 0 {
		fmt.Fprintln(m.out, "No products available to order.")
		return
	}

	fmt.Fprintln(m.out, "------")
	for i, p := range active {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, p.Describe())
	}
	fmt.Fprintln(m.out, "------")
	fmt.Fprintln(m.out, "Enter an empty line to finish the order.")

	lines := m.collectLines(active)
	if len(lines) == 0 {
		fmt.Fprintln(m.out, "Order cancelled.")
		return
	}

	total, err := m.store.Order(lines)
	if err != nil {
		m.lg.Warn("Order failed", zap.Error(err))
		fmt.Fprintf(m.out, "Error while placing the order: %s\n", err)
		return
	}

	m.lg.Info("Order placed",
		zap.Int("lines", len(lines)),
		zap.String("total", total.String()),
	)
	fmt.Fprintf(m.out, "Order placed! Total: $%s\n", total.StringFixed(2))
}

func (m *Menu) collectLines(active []product.Product) []store.Line {
	var lines []store.Line
	for {
		numText, ok := m.readLine("Which product number do you want? ")
		if !ok || strings.TrimSpace(numText) == "" {
			return lines
		}
		amountText, ok := m.readLine("What amount do you want? ")
		if !ok || strings.TrimSpace(amountText) == "" {
			return lines
		}

		num, err := strconv.Atoi(strings.TrimSpace(numText))
		if err != nil || num < 1 || num > len(active) {
			fmt.Fprintln(m.out, "Invalid product number.")
			continue
		}
		amount, err := strconv.Atoi(strings.TrimSpace(amountText))
		if err != nil || amount <= 0 {
			fmt.Fprintln(m.out, "The amount must be a positive number.")
			continue
		}

		lines = append(lines, store.Line{Product: active[num-1], Quantity: amount})
		fmt.Fprintln(m.out, "Product added to the order!")
	}
}
