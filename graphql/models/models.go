// Package gqlmodels holds the GraphQL view types. Fields mirror the schema
// (graphql-go field resolvers match them case-insensitively); Int fields are
// int32 and timestamps are RFC3339 strings, so they never share struct types
// with the entity package.
package gqlmodels

import (
	"time"

	gql "github.com/graph-gophers/graphql-go"

	"equiprent.GO/model/entity"
	"equiprent.GO/service/billing"
)

type Item struct {
	ID           gql.ID
	Name         string
	Category     string
	RatePerUnit  float64
	AvailableQty int32
}

func NewItem(it entity.Item) Item {
	return Item{
		ID:           gql.ID(it.ID),
		Name:         it.Name,
		Category:     it.Category,
		RatePerUnit:  it.RatePerUnit,
		AvailableQty: int32(it.AvailableQty),
	}
}

type LineItem struct {
	ID          gql.ID
	ItemID      string
	Name        string
	OriginalQty int32
	ReturnedQty int32
	CurrentQty  int32
	Rate        float64
	StartDate   string
}

func newLineItem(li entity.LineItem) LineItem {
	return LineItem{
		ID:          gql.ID(li.ID),
		ItemID:      li.ItemID,
		Name:        li.Name,
		OriginalQty: int32(li.OriginalQty),
		ReturnedQty: int32(li.ReturnedQty),
		CurrentQty:  int32(li.CurrentQty),
		Rate:        li.Rate,
		StartDate:   li.StartDate.Format(time.RFC3339),
	}
}

func newLineItems(lines []entity.LineItem) []LineItem {
	out := make([]LineItem, len(lines))
	for i, li := range lines {
		out[i] = newLineItem(li)
	}
	return out
}

type Payment struct {
	ID     gql.ID
	Amount float64
	Date   string
}

type ReturnLog struct {
	ID       gql.ID
	ItemID   string
	ItemName string
	Qty      int32
	Date     string
}

type Settlement struct {
	Subtotal       float64
	Discount       float64
	Deposit        float64
	OpeningBalance float64
	TotalDue       float64
	TotalPaid      float64
	Remaining      float64
}

func newSettlement(s billing.Settlement) Settlement {
	return Settlement{
		Subtotal:       s.Subtotal,
		Discount:       s.Discount,
		Deposit:        s.Deposit,
		OpeningBalance: s.OpeningBalance,
		TotalDue:       s.TotalDue,
		TotalPaid:      s.TotalPaid,
		Remaining:      s.Remaining,
	}
}

type Quotation struct {
	ID              gql.ID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []LineItem
	Date            string
	Notes           string
	DiscountValue   float64
	DiscountType    string
	SecurityDeposit float64
	Status          string
	StockCommitted  bool
	Settlement      Settlement
}

func NewQuotation(q entity.Quotation) Quotation {
	return Quotation{
		ID:              gql.ID(q.ID),
		CustomerName:    q.CustomerName,
		CustomerPhone:   q.CustomerPhone,
		CustomerAddress: q.CustomerAddress,
		Items:           newLineItems(q.Items),
		Date:            q.Date.Format(time.RFC3339),
		Notes:           q.Notes,
		DiscountValue:   q.DiscountValue,
		DiscountType:    string(q.DiscountType),
		SecurityDeposit: q.SecurityDeposit,
		Status:          string(q.Status),
		StockCommitted:  q.StockCommitted,
		Settlement:      newSettlement(billing.SettleQuotation(q)),
	}
}

type Rental struct {
	ID              gql.ID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []LineItem
	ReturnLogs      []ReturnLog
	StartDate       string
	Status          string
	DiscountValue   float64
	DiscountType    string
	SecurityDeposit float64
	OpeningBalance  float64
	Payments        []Payment
	Notes           string
	Settlement      Settlement
}

func NewRental(r entity.Rental, system entity.RentalSystem, now time.Time) Rental {
	payments := make([]Payment, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = Payment{
			ID:     gql.ID(p.ID),
			Amount: p.Amount,
			Date:   p.Date.Format(time.RFC3339),
		}
	}
	logs := make([]ReturnLog, len(r.ReturnLogs))
	for i, l := range r.ReturnLogs {
		logs[i] = ReturnLog{
			ID:       gql.ID(l.ID),
			ItemID:   l.ItemID,
			ItemName: l.ItemName,
			Qty:      int32(l.Qty),
			Date:     l.Date.Format(time.RFC3339),
		}
	}
	return Rental{
		ID:              gql.ID(r.ID),
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Items:           newLineItems(r.Items),
		ReturnLogs:      logs,
		StartDate:       r.StartDate.Format(time.RFC3339),
		Status:          string(r.Status),
		DiscountValue:   r.DiscountValue,
		DiscountType:    string(r.DiscountType),
		SecurityDeposit: r.SecurityDeposit,
		OpeningBalance:  r.OpeningBalance,
		Payments:        payments,
		Notes:           r.Notes,
		Settlement:      newSettlement(billing.Settle(r, system, now)),
	}
}

type Settings struct {
	Currency           string
	RentalSystem       string
	NextContractNumber int32
}

func NewSettings(s entity.SystemSettings) Settings {
	return Settings{
		Currency:           string(s.Currency),
		RentalSystem:       string(s.RentalSystem),
		NextContractNumber: int32(s.NextContractNumber),
	}
}
