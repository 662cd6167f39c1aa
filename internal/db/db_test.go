package db_test

import (
	"context"
	"database/sql"
	"surveyapp/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should save the record", func() {
				record := Test{Username: "Alice"}
				err := testDB.Create(ctx, &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WithArgs("Alice").
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.Create(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the connection is gone", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests"`).
					WithArgs("Alice").
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return the wrapped driver error", func() {
				err := testDB.Create(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err).NotTo(MatchError(db.ErrDuplicate))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Alice"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Alice", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(1)))
				Expect(results[1].ID).To(Equal(uint(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
