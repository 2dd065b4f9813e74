package graphqlserver

import (
	"time"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"equiprent.GO/graphql"
	gqlmodels "equiprent.GO/graphql/models"
	"equiprent.GO/model/repository/state"
)

// RootResolver is the root for graphql-go. Every query loads the current
// snapshot from the store; settlements are computed against time.Now at
// query time, same as the REST views.
type RootResolver struct {
	Store *state.Store
}

type QuotationsArgs struct {
	Status *string
}

func (r *RootResolver) Quotations(args QuotationsArgs) ([]gqlmodels.Quotation, error) {
	data, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	out := make([]gqlmodels.Quotation, 0, len(data.Quotations))
	for _, q := range data.Quotations {
		if args.Status != nil && *args.Status != "" && string(q.Status) != *args.Status {
			continue
		}
		out = append(out, gqlmodels.NewQuotation(q))
	}
	return out, nil
}

type IDArgs struct {
	ID gql.ID
}

func (r *RootResolver) Quotation(args IDArgs) (*gqlmodels.Quotation, error) {
	data, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	for _, q := range data.Quotations {
		if q.ID == string(args.ID) {
			v := gqlmodels.NewQuotation(q)
			return &v, nil
		}
	}
	return nil, nil
}

type RentalsArgs struct {
	Status *string
}

func (r *RootResolver) Rentals(args RentalsArgs) ([]gqlmodels.Rental, error) {
	data, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]gqlmodels.Rental, 0, len(data.Rentals))
	for _, rt := range data.Rentals {
		if args.Status != nil && *args.Status != "" && string(rt.Status) != *args.Status {
			continue
		}
		out = append(out, gqlmodels.NewRental(rt, data.SystemSettings.RentalSystem, now))
	}
	return out, nil
}

func (r *RootResolver) Rental(args IDArgs) (*gqlmodels.Rental, error) {
	data, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	for _, rt := range data.Rentals {
		if rt.ID == string(args.ID) {
			v := gqlmodels.NewRental(rt, data.SystemSettings.RentalSystem, time.Now())
			return &v, nil
		}
	}
	return nil, nil
}

func (r *RootResolver) ArchivedRentals() ([]gqlmodels.Rental, error) {
	data, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]gqlmodels.Rental, 0, len(data.ArchivedRentals))
	for _, rt := range data.ArchivedRentals {
		out = append(out, gqlmodels.NewRental(rt, data.SystemSettings.RentalSystem, now))
	}
	return out, nil
}

func (r *RootResolver) Inventory() ([]gqlmodels.Item, error) {
	data, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	out := make([]gqlmodels.Item, 0, len(data.Items))
	for _, it := range data.Items {
		out = append(out, gqlmodels.NewItem(it))
	}
	return out, nil
}

func (r *RootResolver) Settings() (gqlmodels.Settings, error) {
	data, err := r.Store.Load()
	if err != nil {
		return gqlmodels.Settings{}, err
	}
	return gqlmodels.NewSettings(data.SystemSettings), nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(st *state.Store) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Store: st}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
