package repository

import (
	"database/sql"
	"database/sql/driver"
	"net"
	"testing"

	"github.com/Astemirdum/tracklab-service/tracklab/internal/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMapErr(t *testing.T) {
	dial := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	other := errors.New("boom")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "dial failure", in: dial, want: errs.ErrStorageUnavailable},
		{name: "wrapped dial failure", in: errors.Wrap(dial, "ping"), want: errs.ErrStorageUnavailable},
		{name: "bad conn", in: driver.ErrBadConn, want: errs.ErrStorageUnavailable},
		{name: "no rows", in: sql.ErrNoRows, want: errs.ErrNotFound},
		{name: "unique", in: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: errs.ErrDuplicateIdentity},
		{name: "foreign key", in: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: errs.ErrInvalidState},
		{name: "connection lost", in: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: errs.ErrStorageUnavailable},
		{name: "passthrough", in: other, want: other},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, mapErr(tt.in), tt.want)
		})
	}
	assert.NoError(t, mapErr(nil))
}
