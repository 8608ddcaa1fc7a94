package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trucking-planner/internal/apperr"
	"trucking-planner/internal/domain"
	"trucking-planner/internal/ports/ordertx"
)

// Postgres is the pgx-backed Store implementation. Dates are stored as
// YYYY-MM-DD text, matching the domain representation.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres creates a Postgres store over the given pool.
func NewPostgres(db *pgxpool.Pool) *Postgres { return &Postgres{db: db} }

var _ Store = (*Postgres)(nil)

// SetAvailability overwrites the vendor's entry for a date wholesale.
func (r *Postgres) SetAvailability(ctx context.Context, date, vendor string, e domain.AvailabilityEntry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO availability (day, vendor, slots20, slots40)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (day, vendor)
        DO UPDATE SET slots20 = EXCLUDED.slots20, slots40 = EXCLUDED.slots40
    `, date, vendor, e.Slots20, e.Slots40)
	if err != nil {
		return fmt.Errorf("set availability %s/%s: %w", date, vendor, err)
	}
	return nil
}

// GetAvailability returns the entry, zero-valued when absent.
func (r *Postgres) GetAvailability(ctx context.Context, date, vendor string) (domain.AvailabilityEntry, error) {
	var e domain.AvailabilityEntry
	err := r.db.QueryRow(ctx,
		`SELECT slots20, slots40 FROM availability WHERE day=$1 AND vendor=$2`,
		date, vendor,
	).Scan(&e.Slots20, &e.Slots40)
	if err != nil {
		if IsNoRows(err) {
			return domain.AvailabilityEntry{}, nil
		}
		return domain.AvailabilityEntry{}, fmt.Errorf("get availability %s/%s: %w", date, vendor, err)
	}
	return e, nil
}

// AvailabilityByDate returns all vendor entries for one date.
func (r *Postgres) AvailabilityByDate(ctx context.Context, date string) (map[string]domain.AvailabilityEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT vendor, slots20, slots40 FROM availability WHERE day=$1`, date)
	if err != nil {
		return nil, fmt.Errorf("availability by date %s: %w", date, err)
	}
	defer rows.Close()

	out := make(map[string]domain.AvailabilityEntry)
	for rows.Next() {
		var (
			vendor string
			e      domain.AvailabilityEntry
		)
		if err := rows.Scan(&vendor, &e.Slots20, &e.Slots40); err != nil {
			return nil, err
		}
		out[vendor] = e
	}
	return out, rows.Err()
}

// AvailabilityBetween returns entries keyed date → vendor for the range.
func (r *Postgres) AvailabilityBetween(ctx context.Context, from, to string) (map[string]map[string]domain.AvailabilityEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT day, vendor, slots20, slots40 FROM availability WHERE day BETWEEN $1 AND $2`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("availability between %s..%s: %w", from, to, err)
	}
	defer rows.Close()

	out := make(map[string]map[string]domain.AvailabilityEntry)
	for rows.Next() {
		var (
			day, vendor string
			e           domain.AvailabilityEntry
		)
		if err := rows.Scan(&day, &vendor, &e.Slots20, &e.Slots40); err != nil {
			return nil, err
		}
		if out[day] == nil {
			out[day] = make(map[string]domain.AvailabilityEntry)
		}
		out[day][vendor] = e
	}
	return out, rows.Err()
}

// InsertOrder stores a new order together with its container set.
func (r *Postgres) InsertOrder(ctx context.Context, o *domain.Order, items []domain.Container) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
        INSERT INTO orders (id, vendor, stuffing_date, closing_date, delivery_note,
                            shipping_point, requested20, requested40, created_at, summary_status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, o.ID, o.Vendor, o.StuffingDate, o.ClosingDate, o.DeliveryNote,
		o.ShippingPoint, o.Requested20, o.Requested40, o.CreatedAt, string(o.SummaryStatus))
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("order %s: %w", o.ID, apperr.Conflict)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for _, c := range items {
		_, err = tx.Exec(ctx, `
            INSERT INTO containers (order_id, seq, size, acceptance, trucking_status,
                                    container_number, seal_number, vehicle_number,
                                    driver_name, contact, depot)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        `, o.ID, c.SequenceNo, string(c.Size), string(c.Acceptance), string(c.TruckingStatus),
			c.ContainerNumber, c.SealNumber, c.VehicleNumber, c.DriverName, c.Contact, c.Depot)
		if err != nil {
			return fmt.Errorf("insert container %d: %w", c.SequenceNo, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const orderColumns = `id, vendor, stuffing_date, closing_date, delivery_note,
       shipping_point, requested20, requested40, created_at, summary_status`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.Vendor, &o.StuffingDate, &o.ClosingDate, &o.DeliveryNote,
		&o.ShippingPoint, &o.Requested20, &o.Requested40, &o.CreatedAt, &o.SummaryStatus)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrder returns the order or nil when it does not exist.
func (r *Postgres) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// ListOrders returns orders matching the filter in creation order.
func (r *Postgres) ListOrders(ctx context.Context, f ListFilter) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders`
	args := make([]any, 0, 3)
	where := ""
	add := func(cond string, v any) {
		args = append(args, v)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if f.Vendor != "" {
		add("vendor = $%d", f.Vendor)
	}
	if f.From != "" {
		add("stuffing_date >= $%d", f.From)
	}
	if f.To != "" {
		add("stuffing_date <= $%d", f.To)
	}
	q += where + " ORDER BY created_at, id"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

const containerColumns = `seq, size, acceptance, trucking_status, container_number,
       seal_number, vehicle_number, driver_name, contact, depot`

// Containers returns the order's containers in creation order.
func (r *Postgres) Containers(ctx context.Context, orderID string) ([]domain.Container, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+containerColumns+` FROM containers WHERE order_id=$1 ORDER BY seq`, orderID)
	if err != nil {
		return nil, fmt.Errorf("containers %s: %w", orderID, err)
	}
	defer rows.Close()

	var out []domain.Container
	for rows.Next() {
		var c domain.Container
		if err := rows.Scan(&c.SequenceNo, &c.Size, &c.Acceptance, &c.TruckingStatus,
			&c.ContainerNumber, &c.SealNumber, &c.VehicleNumber,
			&c.DriverName, &c.Contact, &c.Depot); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// WithOrderTx opens a transaction and executes fn within it.
func (r *Postgres) WithOrderTx(ctx context.Context, fn func(tx ordertx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	if err := fn(pgTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Postgres) Close() { r.db.Close() }

// pgTx implements the transactional order view over one pgx transaction.
type pgTx struct{ tx pgx.Tx }

var _ ordertx.Repository = pgTx{}

func (t pgTx) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(t.tx.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

func (t pgTx) Containers(ctx context.Context, orderID string) ([]domain.Container, error) {
	rows, err := t.tx.Query(ctx,
		`SELECT `+containerColumns+` FROM containers WHERE order_id=$1 ORDER BY seq`, orderID)
	if err != nil {
		return nil, fmt.Errorf("containers %s: %w", orderID, err)
	}
	defer rows.Close()

	var out []domain.Container
	for rows.Next() {
		var c domain.Container
		if err := rows.Scan(&c.SequenceNo, &c.Size, &c.Acceptance, &c.TruckingStatus,
			&c.ContainerNumber, &c.SealNumber, &c.VehicleNumber,
			&c.DriverName, &c.Contact, &c.Depot); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (t pgTx) SetAcceptance(ctx context.Context, orderID string, seq int, a domain.Acceptance) error {
	ct, err := t.tx.Exec(ctx,
		`UPDATE containers SET acceptance=$3 WHERE order_id=$1 AND seq=$2`,
		orderID, seq, string(a))
	if err != nil {
		return fmt.Errorf("set acceptance %s/%d: %w", orderID, seq, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("container %s/%d: %w", orderID, seq, apperr.NotFound)
	}
	return nil
}

func (t pgTx) SetTruckingStatus(ctx context.Context, orderID string, seq int, s domain.TruckingStatus) error {
	ct, err := t.tx.Exec(ctx,
		`UPDATE containers SET trucking_status=$3 WHERE order_id=$1 AND seq=$2`,
		orderID, seq, string(s))
	if err != nil {
		return fmt.Errorf("set trucking status %s/%d: %w", orderID, seq, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("container %s/%d: %w", orderID, seq, apperr.NotFound)
	}
	return nil
}

func (t pgTx) ApplyContainerPatch(ctx context.Context, orderID string, seq int, p domain.ContainerPatch) error {
	var status *string
	if p.TruckingStatus != nil {
		s := string(*p.TruckingStatus)
		status = &s
	}
	ct, err := t.tx.Exec(ctx, `
        UPDATE containers
        SET
            container_number = COALESCE($3, container_number),
            seal_number      = COALESCE($4, seal_number),
            vehicle_number   = COALESCE($5, vehicle_number),
            driver_name      = COALESCE($6, driver_name),
            contact          = COALESCE($7, contact),
            depot            = COALESCE($8, depot),
            trucking_status  = COALESCE($9, trucking_status)
        WHERE order_id = $1 AND seq = $2
    `, orderID, seq, p.ContainerNumber, p.SealNumber, p.VehicleNumber,
		p.DriverName, p.Contact, p.Depot, status)
	if err != nil {
		return fmt.Errorf("patch container %s/%d: %w", orderID, seq, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("container %s/%d: %w", orderID, seq, apperr.NotFound)
	}
	return nil
}

func (t pgTx) SetSummaryStatus(ctx context.Context, orderID string, s domain.OrderStatus) error {
	ct, err := t.tx.Exec(ctx,
		`UPDATE orders SET summary_status=$2 WHERE id=$1`, orderID, string(s))
	if err != nil {
		return fmt.Errorf("set summary status %s: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", orderID, apperr.NotFound)
	}
	return nil
}
