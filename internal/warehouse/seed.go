// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/venuelens/internal/logging"
)

// SeedOptions controls demo data generation.
type SeedOptions struct {
	// Rows is the number of fact rows to insert, including the duplicate,
	// unparseable and out-of-scope rows mixed in.
	Rows int
	// Seed makes generation deterministic.
	Seed uint64
	// Start is the first event month; Months is how many follow it.
	Start  time.Time
	Months int
	// Progress, when set, is called after each inserted fact row.
	Progress func(done int)
}

// SeedSummary reports what Seed inserted.
type SeedSummary struct {
	Venues      int
	Visits      int
	FactRows    int
	Duplicates  int
	Unparseable int
	OutOfScope  int
}

type demoVenue struct {
	id, corp, corpID, mgmt, mgmtID, name, venueType, market, city, province string
}

var demoVenues = []demoVenue{
	{"VN-101", "Harborview Hospitality Group", "CE-1", "Harborview East", "ME-11", "Pier 9 Ballroom", "Ballroom", "Boston Metro", "Boston", "MA"},
	{"VN-102", "Harborview Hospitality Group", "CE-1", "Harborview East", "ME-11", "Lighthouse Terrace", "Rooftop", "Boston Metro", "Boston", "MA"},
	{"VN-103", "Harborview Hospitality Group", "CE-1", "Harborview West", "ME-12", "Sunset Loft", "Loft", "Bay Area", "Oakland", "CA"},
	{"VN-104", "Harborview Hospitality Group", "CE-1", "Harborview West", "ME-12", "Bayside Hall", "Banquet Hall", "Bay Area", "San Francisco", "CA"},
	{"VN-201", "Summit Events Co", "CE-2", "Summit Mountain", "ME-21", "Ridge Lodge", "Lodge", "Front Range", "Boulder", "CO"},
	{"VN-202", "Summit Events Co", "CE-2", "Summit Mountain", "ME-21", "Alpine Barn", "Barn", "Front Range", "Estes Park", "CO"},
	{"VN-203", "Summit Events Co", "CE-2", "Summit Urban", "ME-22", "Skyline Rooftop", "Rooftop", "Denver Metro", "Denver", "CO"},
	{"VN-204", "Summit Events Co", "CE-2", "Summit Urban", "ME-22", "Gallery 51", "Gallery", "Denver Metro", "Denver", "CO"},
	{"VN-301", "Crescent Venues", "CE-3", "Crescent Coastal", "ME-31", "Dune House", "Estate", "Gulf Coast", "Destin", "FL"},
	{"VN-302", "Crescent Venues", "CE-3", "Crescent Coastal", "ME-31", "Marina Club", "Club", "Gulf Coast", "Pensacola", "FL"},
}

type demoItem struct {
	id, globalCode, globalDesc, publicName, bookType, typeCode string
	minPrice, maxPrice                                         float64
}

var demoItems = []demoItem{
	{"IT-100", "FNB", "Food & Beverage", "Plated Dinner", "Package", "Catering", 1200, 9000},
	{"IT-101", "FNB", "Food & Beverage", "Open Bar", "Add-on", "Bar", 400, 3500},
	{"IT-200", "RNT", "Room Rental", "Evening Buyout", "Rental", "Space", 2500, 15000},
	{"IT-201", "RNT", "Room Rental", "Half Day Meeting", "Rental", "Space", 600, 2400},
	{"IT-300", "ENT", "Entertainment", "Live Band", "Add-on", "Music", 900, 4000},
	{"IT-400", "SVC", "Service Fee", "Event Coordination", "Fee", "Service", 150, 900},
}

var (
	demoPayTypes   = []string{"Credit Card", "ACH", "Check", "Gift Card"}
	demoPayActions = []string{"Paid", "Deposit", "Pending", "Refunded"}
	demoStates     = []string{"Confirmed", "Tentative", "Completed", "Cancelled"}
)

// Seed fills the warehouse tables with deterministic demo bookings. It
// deliberately mixes in exact duplicate fact rows, rows whose
// FB_SERVICE_DATE does not parse and rows from other source systems so the
// normalizer and query filter have something to remove.
func Seed(ctx context.Context, db *sql.DB, opts SeedOptions) (SeedSummary, error) {
	var sum SeedSummary
	if opts.Rows <= 0 {
		return sum, fmt.Errorf("seed rows must be positive, got %d", opts.Rows)
	}
	if opts.Months <= 0 {
		opts.Months = 24
	}
	if opts.Start.IsZero() {
		now := time.Now().UTC()
		opts.Start = time.Date(now.Year()-2, now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	if err := CreateSchema(ctx, db); err != nil {
		return sum, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return sum, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	s := &seeder{
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		opts: opts,
	}
	if err := s.prepare(ctx, tx); err != nil {
		return sum, err
	}
	defer s.close()

	if err := s.insertDimensions(ctx); err != nil {
		return sum, err
	}
	sum.Venues = len(demoVenues)

	customers := max(opts.Rows/6, 10)
	for sum.FactRows < opts.Rows {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if err := s.insertVisit(ctx, &sum, customers); err != nil {
			return sum, err
		}
	}

	if err := tx.Commit(); err != nil {
		return sum, fmt.Errorf("failed to commit seed data: %w", err)
	}

	logging.Info().
		Int("fact_rows", sum.FactRows).
		Int("visits", sum.Visits).
		Int("duplicates", sum.Duplicates).
		Int("unparseable", sum.Unparseable).
		Int("out_of_scope", sum.OutOfScope).
		Msg("Demo warehouse seeded")
	return sum, nil
}

type seeder struct {
	rng  *rand.Rand
	opts SeedOptions

	venueStmt, itemStmt, visitStmt, factStmt *sql.Stmt
}

func (s *seeder) prepare(ctx context.Context, tx *sql.Tx) error {
	var err error
	if s.venueStmt, err = tx.PrepareContext(ctx, `INSERT INTO dim_venue VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`); err != nil {
		return fmt.Errorf("prepare dim_venue insert: %w", err)
	}
	if s.itemStmt, err = tx.PrepareContext(ctx, `INSERT INTO dim_item VALUES (?, ?, ?, ?, ?, ?, ?)`); err != nil {
		return fmt.Errorf("prepare dim_item insert: %w", err)
	}
	if s.visitStmt, err = tx.PrepareContext(ctx, `INSERT INTO dim_visit VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`); err != nil {
		return fmt.Errorf("prepare dim_visit insert: %w", err)
	}
	if s.factStmt, err = tx.PrepareContext(ctx, `INSERT INTO fact_book_trans VALUES (
		?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`); err != nil {
		return fmt.Errorf("prepare fact_book_trans insert: %w", err)
	}
	return nil
}

func (s *seeder) close() {
	for _, stmt := range []*sql.Stmt{s.venueStmt, s.itemStmt, s.visitStmt, s.factStmt} {
		closeQuietly(stmt)
	}
}

func (s *seeder) insertDimensions(ctx context.Context) error {
	for _, v := range demoVenues {
		if _, err := s.venueStmt.ExecContext(ctx, v.id, "Active", v.corp, v.mgmt, v.name, v.market, v.venueType, v.city, v.province, "US"); err != nil {
			return fmt.Errorf("insert venue %s: %w", v.id, err)
		}
	}
	for _, it := range demoItems {
		if _, err := s.itemStmt.ExecContext(ctx, it.id, it.globalCode, "N", "standard", it.publicName, it.bookType, it.typeCode); err != nil {
			return fmt.Errorf("insert item %s: %w", it.id, err)
		}
	}
	return nil
}

// insertVisit writes one visit and its one to four transactions.
func (s *seeder) insertVisit(ctx context.Context, sum *SeedSummary, customers int) error {
	sum.Visits++
	visitID := fmt.Sprintf("VS-%06d", sum.Visits)
	venue := demoVenues[s.rng.IntN(len(demoVenues))]
	email := fmt.Sprintf("guest%04d@example.com", s.rng.IntN(customers))

	eventDay := s.opts.Start.AddDate(0, 0, s.rng.IntN(s.opts.Months*30))
	guests := 20 + s.rng.IntN(280)
	agreed := s.money(1000, 40000)

	state := demoStates[s.rng.IntN(len(demoStates))]
	cancel := ""
	if state == "Cancelled" {
		cancel = "Client Cancelled"
	}
	if _, err := s.visitStmt.ExecContext(ctx, visitID, fmt.Sprintf("W%d", sum.Visits), venue.id, state,
		s.money(0, 500), "ORIG-"+venue.mgmtID, "OWN-"+venue.corpID, agreed, "WEB", cancel, venue.city); err != nil {
		return fmt.Errorf("insert visit %s: %w", visitID, err)
	}

	for n := 1 + s.rng.IntN(4); n > 0 && sum.FactRows < s.opts.Rows; n-- {
		item := demoItems[s.rng.IntN(len(demoItems))]
		charge := s.money(item.minPrice, item.maxPrice)
		subtotal := decimal.NewFromFloat(charge).Mul(decimal.NewFromFloat(0.88)).Round(2).InexactFloat64()

		created := eventDay.AddDate(0, 0, -s.rng.IntN(90)).Add(time.Duration(s.rng.IntN(86400)) * time.Second)
		serviceDate := eventDay.Format("01/02/2006")
		source := "PAY"
		if s.rng.IntN(2) == 0 {
			source = "urcheckout"
		}

		seq := sum.FactRows + 1
		switch {
		case seq%97 == 0:
			serviceDate = "TBD"
			sum.Unparseable++
		case seq%41 == 0:
			source = "LEGACY"
			sum.OutOfScope++
		}

		args := []any{
			fmt.Sprintf("%d", 900000+seq), fmt.Sprintf("BT-%07d", seq), visitID, venue.corpID, venue.mgmtID, venue.id,
			source, fmt.Sprintf("SV-%d", s.rng.IntN(50)), created.Unix(), created.Add(time.Hour).Unix(), serviceDate,
			fmt.Sprintf("TR-%d", seq), billedName(email), fmt.Sprintf("CART-%d", sum.Visits), charge,
			venue.city, "US", email, fmt.Sprintf("EV-%d", sum.Visits), item.globalDesc, item.publicName, item.id,
			fmt.Sprintf("PTY-%d", sum.Visits), demoPayActions[s.rng.IntN(len(demoPayActions))],
			demoPayTypes[s.rng.IntN(len(demoPayTypes))], guests, "", venue.province, agreed, subtotal,
			fmt.Sprintf("TX-%d", seq), fmt.Sprintf("TTX-%d", seq), fmt.Sprintf("%05d", 10000+s.rng.IntN(89999)),
		}
		if err := s.insertFact(ctx, sum, args); err != nil {
			return err
		}

		// Every 50th clean row is exported twice.
		clean := source != "LEGACY" && serviceDate != "TBD"
		if clean && seq%50 == 0 && sum.FactRows < s.opts.Rows {
			if err := s.insertFact(ctx, sum, args); err != nil {
				return err
			}
			sum.Duplicates++
		}
	}
	return nil
}

func (s *seeder) insertFact(ctx context.Context, sum *SeedSummary, args []any) error {
	if _, err := s.factStmt.ExecContext(ctx, args...); err != nil {
		return fmt.Errorf("insert fact row %d: %w", sum.FactRows+1, err)
	}
	sum.FactRows++
	if s.opts.Progress != nil {
		s.opts.Progress(sum.FactRows)
	}
	return nil
}

// money returns a random amount in [lo, hi) rounded to cents.
func (s *seeder) money(lo, hi float64) float64 {
	v := lo + s.rng.Float64()*(hi-lo)
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func billedName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
