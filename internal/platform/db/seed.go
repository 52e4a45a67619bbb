package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/domain/auth"
	"backoffice/internal/domain/rates"
	"backoffice/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureRateTypes(ctx, pool); err != nil {
		return err
	}
	if err := ensureRateFrequencies(ctx, pool); err != nil {
		return err
	}
	if err := ensureInvoiceCounter(ctx, pool); err != nil {
		return err
	}
	if cfg.SeedAdminEmail != "" {
		if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}
	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, pool); err != nil {
			return err
		}
	}
	return nil
}

func ensureRateTypes(ctx context.Context, pool *pgxpool.Pool) error {
	for id, name := range rates.RateTypeNames {
		_, err := pool.Exec(ctx,
			"INSERT INTO app.m_rate_type (rate_type_id, rate_type_name, is_primary_rates) VALUES ($1, $2, $3) ON CONFLICT (rate_type_id) DO NOTHING",
			id, name, id == rates.RateTypeStandard)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureRateFrequencies(ctx context.Context, pool *pgxpool.Pool) error {
	for id, name := range rates.RateFrequencyNames {
		_, err := pool.Exec(ctx,
			"INSERT INTO app.m_rate_frequency (rate_frequency_id, rate_frequency_name) VALUES ($1, $2) ON CONFLICT (rate_frequency_id) DO NOTHING",
			id, name)
		if err != nil {
			return err
		}
	}
	return nil
}

// The sales counter holds the next invoice number to hand out. Generation
// bumps it atomically, so seeding just has to make the row exist.
func ensureInvoiceCounter(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx,
		"INSERT INTO app.m_constant (id, constant, use_for) VALUES (1, '1200000', 'Sales') ON CONFLICT (use_for) DO NOTHING")
	return err
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM app.m_user WHERE email_id = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx,
		"INSERT INTO app.m_user (first_name, last_name, email_id, pass) VALUES ($1, $2, $3, $4)",
		"Admin", "User", email, hash)
	return err
}

func seedDemoData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM app.m_client WHERE client_name = $1", "Meridian Health Group").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var clientID string
	err := pool.QueryRow(ctx,
		"INSERT INTO app.m_client (client_name, email, contact_name) VALUES ($1, $2, $3) RETURNING client_id",
		"Meridian Health Group", "accounts@meridianhealth.example", "Claire Byrne").Scan(&clientID)
	if err != nil {
		return err
	}

	var userID string
	err = pool.QueryRow(ctx,
		"INSERT INTO app.m_user (first_name, last_name, email_id) VALUES ($1, $2, $3) RETURNING user_id",
		"Aoife", "Kelly", "aoife.kelly@contractors.example").Scan(&userID)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx,
		"INSERT INTO app.m_candidate (candidate_id, employee_id, holiday_count) VALUES ($1, $2, 0)",
		userID, "EMP-0001")
	if err != nil {
		return err
	}

	var pccID string
	err = pool.QueryRow(ctx,
		"INSERT INTO app.p_candidate_client (candidate_id, client_id, placement_date, status) VALUES ($1, $2, $3, 0) RETURNING pcc_id",
		userID, clientID, time.Now()).Scan(&pccID)
	if err != nil {
		return err
	}

	demoRates := []struct {
		rateType int
		payRate  float64
		billRate float64
	}{
		{rates.RateTypeStandard, 30, 45},
		{rates.RateTypeWeekend, 45, 62.5},
		{rates.RateTypeBankHoliday, 60, 80},
	}
	for _, r := range demoRates {
		_, err = pool.Exec(ctx,
			"INSERT INTO app.t_contract_rates (rate_type, rate_frequency, pay_rate, bill_rate, pcc_id, date_applicable) VALUES ($1, $2, $3, $4, $5, $6)",
			r.rateType, rates.RateFrequencyHourly, r.payRate, r.billRate, pccID, time.Now())
		if err != nil {
			return err
		}
	}
	return nil
}
