package chatpager

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openGORMMock opens gorm over a sqlmock connection with the dialector built by
// newDialector.
func openGORMMock(dialect string, newDialector func(conn gorm.ConnPool) gorm.Dialector) (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	db, err := gorm.Open(newDialector(mockDB), &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return dialect, db, mock, nil
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("mysql", func(conn gorm.ConnPool) gorm.Dialector {
		return mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true})
	})
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("postgres", func(conn gorm.ConnPool) gorm.Dialector {
		return postgres.New(postgres.Config{Conn: conn})
	})
}
