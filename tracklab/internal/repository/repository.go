package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"strings"
	"time"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Repository interface {
	// InTx runs fn against a repository bound to one transaction. fn's error rolls it back.
	InTx(ctx context.Context, fn func(repo Repository) error) error

	CreateEquipment(ctx context.Context, e model.Equipment) (int64, error)
	GetEquipment(ctx context.Context, id int64) (model.Equipment, error)
	ListEquipment(ctx context.Context, f model.EquipmentFilter) ([]model.Equipment, error)
	UpdateEquipment(ctx context.Context, id int64, u model.EquipmentUpdate) error
	DeleteEquipment(ctx context.Context, id int64) error
	DecrementQuantity(ctx context.Context, id int64) error
	IncrementQuantity(ctx context.Context, id int64) error

	UpsertBorrower(ctx context.Context, b model.BorrowerIdentity) (int64, error)
	GetBorrower(ctx context.Context, id int64) (model.Borrower, error)
	GetBorrowerByCode(ctx context.Context, externalCode string) (model.Borrower, error)

	CreateBorrow(ctx context.Context, b model.Borrow) (int64, error)
	GetBorrow(ctx context.Context, id int64) (model.Borrow, error)
	GetBorrowDetail(ctx context.Context, id int64) (model.BorrowDetail, error)
	MarkReturned(ctx context.Context, id int64) error
	DeleteOngoingBorrow(ctx context.Context, id int64) (int64, error)
	ListOngoing(ctx context.Context, externalCode string) ([]model.BorrowDetail, error)
	ListDue(ctx context.Context, before time.Time) ([]model.BorrowDetail, error)
	CreateReturn(ctx context.Context, r model.Return) (int64, error)
	GetReturnByBorrow(ctx context.Context, borrowID int64) (model.Return, error)

	History(ctx context.Context, r model.DateRange) ([]model.HistoryEntry, error)
	Damages(ctx context.Context, r model.DateRange) ([]model.DamageEntry, error)
	BorrowDates(ctx context.Context, r model.DateRange) ([]time.Time, error)

	CreateUser(ctx context.Context, u model.User) (int64, error)
	EnsureUser(ctx context.Context, u model.User) (bool, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	UpdateProfile(ctx context.Context, id int64, p model.ProfileUpdate) error
	UpdateProfileImage(ctx context.Context, id int64, path string) error
	UpdatePassword(ctx context.Context, id int64, hash string) error

	CreateActivity(ctx context.Context, a model.ActivityLog) (int64, error)
	ListActivity(ctx context.Context, limit int) ([]model.ActivityLog, error)
}

type repository struct {
	db sqlx.ExtContext
	// conn is nil for a transaction-bound repository.
	conn *sqlx.DB
	qb   sq.StatementBuilderType
	log  *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	return &repository{
		db:   db,
		conn: db,
		qb:   sq.StatementBuilder.PlaceholderFormat(placeholder(db.DriverName())),
		log:  log.Named("repo"),
	}, nil
}

func placeholder(driverName string) sq.PlaceholderFormat {
	if driverName == "pgx" || driverName == "postgres" {
		return sq.Dollar
	}
	return sq.Question
}

const (
	equipmentTableName = `equipment`
	borrowersTableName = `borrowers`
	borrowsTableName   = `borrow_transactions`
	returnsTableName   = `return_transactions`
	usersTableName     = `users`
	activityTableName  = `activity_logs`
)

func (r *repository) InTx(ctx context.Context, fn func(repo Repository) error) (err error) {
	if r.conn == nil {
		return fn(r)
	}
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return mapErr(errors.Wrap(err, "begin tx"))
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(&repository{db: tx, qb: r.qb, log: r.log}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("rollback", zap.Error(rbErr))
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return mapErr(errors.Wrap(err, "commit"))
	}
	return nil
}

// utc truncates to seconds in UTC so stored values compare the same in every dialect.
func utc(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func (r *repository) get(ctx context.Context, op string, dest interface{}, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	if err = sqlx.GetContext(ctx, r.db, dest, query, args...); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.log.Error(op, zap.Error(err), zap.String("q", query), zap.Any("args", args))
		}
		return mapErr(err)
	}
	return nil
}

func (r *repository) selectAll(ctx context.Context, op string, dest interface{}, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	r.log.Debug(op, zap.String("query", query), zap.Any("args", args))
	if err = sqlx.SelectContext(ctx, r.db, dest, query, args...); err != nil {
		r.log.Error(op, zap.Error(err), zap.String("q", query), zap.Any("args", args))
		return mapErr(err)
	}
	return nil
}

func (r *repository) exec(ctx context.Context, op string, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error(op, zap.Error(err), zap.String("q", query), zap.Any("args", args))
		return 0, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

// insert runs an INSERT ... RETURNING <id> statement.
func (r *repository) insert(ctx context.Context, op string, b sq.InsertBuilder, idColumn string) (int64, error) {
	query, args, err := b.Suffix("RETURNING " + idColumn).ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err = r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error(op, zap.Error(err), zap.String("q", query), zap.Any("args", args))
		return 0, mapErr(err)
	}
	return id, nil
}

// mapErr translates driver errors into errs sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return errors.Wrap(errs.ErrStorageUnavailable, err.Error())
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrDuplicateIdentity, pgErr.ConstraintName)
		case pgErr.Code == pgerrcode.ForeignKeyViolation, pgErr.Code == pgerrcode.CheckViolation:
			return errors.Wrap(errs.ErrInvalidState, pgErr.Message)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgErr.Code == pgerrcode.AdminShutdown,
			pgErr.Code == pgerrcode.CannotConnectNow:
			return errors.Wrap(errs.ErrStorageUnavailable, pgErr.Message)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return errors.Wrap(errs.ErrDuplicateIdentity, liteErr.Error())
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_TRIGGER:
			return errors.Wrap(errs.ErrInvalidState, liteErr.Error())
		}
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			if strings.Contains(liteErr.Error(), "UNIQUE") {
				return errors.Wrap(errs.ErrDuplicateIdentity, liteErr.Error())
			}
			return errors.Wrap(errs.ErrInvalidState, liteErr.Error())
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR:
			return errors.Wrap(errs.ErrStorageUnavailable, liteErr.Error())
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Wrap(errs.ErrStorageUnavailable, netErr.Error())
	}
	return err
}
