// Package pg persists requisitions and notifications in PostgreSQL.
package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/peusirf-a11y/requisicao-digital/internal/directory"
	"github.com/peusirf-a11y/requisicao-digital/internal/notify"
	"github.com/peusirf-a11y/requisicao-digital/internal/workflow"
)

// Store backs the workflow and notification stores with PostgreSQL.
// Requester, items and history are embedded JSONB documents: a requisition
// is read and written as one row.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var (
	_ workflow.Store = (*Store)(nil)
	_ notify.Store   = (*Store)(nil)
)

// Open connects to PostgreSQL via the pgx stdlib driver.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	// Tuned pool defaults; adjust under load tests
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return New(db), nil
}

// New wraps an existing handle. Used by tests and the migration CLI.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

// Ping verifies connectivity for readiness probes.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// NextID allocates the next sequential requisition id for the current year.
func (s *Store) NextID(ctx context.Context) (string, error) {
	year := s.now().UTC().Year()
	var n int
	err := s.db.QueryRowContext(ctx, `
		insert into requisition_seq(year, n) values ($1, 1)
		on conflict (year) do update set n = requisition_seq.n + 1
		returning n
	`, year).Scan(&n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("REQ-%d-%03d", year, n), nil
}

func (s *Store) Create(ctx context.Context, req workflow.Requisition) error {
	requester, items, history, err := marshalDocs(req)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		insert into requisitions(id, requester, date, items, status, urgency, history, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7, now())
	`, req.ID, requester, req.Date, items, string(req.Status), string(req.Urgency), history)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (workflow.Requisition, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, requester, date, items, status, urgency, history
		from requisitions where id = $1
	`, id)
	req, err := scanRequisition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return workflow.Requisition{}, fmt.Errorf("%w: requisition %q", workflow.ErrNotFound, id)
	}
	return req, err
}

func (s *Store) Update(ctx context.Context, req workflow.Requisition) error {
	requester, items, history, err := marshalDocs(req)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		update requisitions
		set requester = $2, date = $3, items = $4, status = $5, urgency = $6, history = $7, updated_at = now()
		where id = $1
	`, req.ID, requester, req.Date, items, string(req.Status), string(req.Urgency), history)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: requisition %q", workflow.ErrNotFound, req.ID)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]workflow.Requisition, error) {
	rows, err := s.db.QueryContext(ctx, `
		select id, requester, date, items, status, urgency, history
		from requisitions order by date desc, id desc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []workflow.Requisition
	for rows.Next() {
		req, err := scanRequisition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// Add stores one notification row.
func (s *Store) Add(ctx context.Context, n notify.Notification) error {
	_, err := s.db.ExecContext(ctx, `
		insert into notifications(id, body, created_at, read, target_user_id, target_role, requisition_id)
		values ($1, $2, $3, $4, $5, $6, $7)
	`, n.ID, n.Text, n.CreatedAt, n.Read, n.TargetUserID, string(n.TargetRole), n.RequisitionID)
	return err
}

// ListFor returns the user's inbox: direct rows plus rows targeting the
// user's role, newest first.
func (s *Store) ListFor(ctx context.Context, userID string, role directory.Role) ([]notify.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		select id, body, created_at, read, target_user_id, target_role, requisition_id
		from notifications
		where target_user_id = $1 or (target_user_id = '' and target_role = $2)
		order by created_at desc, id desc
	`, userID, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []notify.Notification
	for rows.Next() {
		var n notify.Notification
		var targetRole string
		if err := rows.Scan(&n.ID, &n.Text, &n.CreatedAt, &n.Read, &n.TargetUserID, &targetRole, &n.RequisitionID); err != nil {
			return nil, err
		}
		n.TargetRole = directory.Role(targetRole)
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) MarkRead(ctx context.Context, userID string, role directory.Role) error {
	_, err := s.db.ExecContext(ctx, `
		update notifications set read = true
		where read = false
		  and (target_user_id = $1 or (target_user_id = '' and target_role = $2))
	`, userID, string(role))
	return err
}

// Delete removes one row if it falls inside the user's view.
func (s *Store) Delete(ctx context.Context, id, userID string, role directory.Role) error {
	res, err := s.db.ExecContext(ctx, `
		delete from notifications
		where id = $1
		  and (target_user_id = $2 or (target_user_id = '' and target_role = $3))
	`, id, userID, string(role))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notify.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequisition(row rowScanner) (workflow.Requisition, error) {
	var req workflow.Requisition
	var requester, items, history []byte
	var status, urgency string
	if err := row.Scan(&req.ID, &requester, &req.Date, &items, &status, &urgency, &history); err != nil {
		return workflow.Requisition{}, err
	}
	req.Status = workflow.Status(status)
	req.Urgency = workflow.Urgency(urgency)
	if err := json.Unmarshal(requester, &req.Requester); err != nil {
		return workflow.Requisition{}, fmt.Errorf("decode requester: %w", err)
	}
	if err := json.Unmarshal(items, &req.Items); err != nil {
		return workflow.Requisition{}, fmt.Errorf("decode items: %w", err)
	}
	if err := json.Unmarshal(history, &req.History); err != nil {
		return workflow.Requisition{}, fmt.Errorf("decode history: %w", err)
	}
	return req, nil
}

func marshalDocs(req workflow.Requisition) (requester, items, history []byte, err error) {
	if requester, err = json.Marshal(req.Requester); err != nil {
		return nil, nil, nil, err
	}
	if items, err = json.Marshal(req.Items); err != nil {
		return nil, nil, nil, err
	}
	if history, err = json.Marshal(req.History); err != nil {
		return nil, nil, nil, err
	}
	return requester, items, history, nil
}
