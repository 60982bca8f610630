package store_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wamisho-d/ecommerece/internal/db"
	"github.com/wamisho-d/ecommerece/internal/models"
	"github.com/wamisho-d/ecommerece/internal/store"
)

func setupStore(t *testing.T) (*store.Store, *gorm.DB) {
	// A DSN per test keeps the shared-cache in-memory databases isolated
	// from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return store.New(testDB), testDB
}

func TestCustomerCRUD(t *testing.T) {
	s, _ := setupStore(t)

	cust := models.Customer{Name: "Thomas Jack", Email: "thomas@example.com", PhoneNumber: "3234562345"}
	assert.NoError(t, s.CreateCustomer(&cust))
	assert.Greater(t, cust.ID, uint(0))

	got, err := s.GetCustomer(cust.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Thomas Jack", got.Name)
	assert.Equal(t, "thomas@example.com", got.Email)

	updated, err := s.UpdateCustomer(cust.ID, models.Customer{Name: "Tom Jack", Email: "tom@example.com", PhoneNumber: "555"})
	assert.NoError(t, err)
	assert.Equal(t, "Tom Jack", updated.Name)
	assert.Equal(t, cust.ID, updated.ID)

	assert.NoError(t, s.DeleteCustomer(cust.ID))
	_, err = s.GetCustomer(cust.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCustomerNotFoundSentinels(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.GetCustomer(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = s.UpdateCustomer(42, models.Customer{Name: "x", Email: "x@example.com", PhoneNumber: "1"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Delete of an absent row is a successful no-op.
	assert.NoError(t, s.DeleteCustomer(42))
}

func TestDuplicateCustomerEmail(t *testing.T) {
	s, testDB := setupStore(t)

	first := models.Customer{Name: "A", Email: "dup@example.com", PhoneNumber: "1"}
	assert.NoError(t, s.CreateCustomer(&first))

	second := models.Customer{Name: "B", Email: "dup@example.com", PhoneNumber: "2"}
	err := s.CreateCustomer(&second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	testDB.Model(&models.Customer{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCustomerWithDependents(t *testing.T) {
	s, _ := setupStore(t)

	cust := models.Customer{Name: "Owner", Email: "owner@example.com", PhoneNumber: "1"}
	assert.NoError(t, s.CreateCustomer(&cust))

	acct, err := s.CreateAccount(cust.ID, "owner", "secret")
	assert.NoError(t, err)

	err = s.DeleteCustomer(cust.ID)
	assert.ErrorIs(t, err, store.ErrCustomerHasDependents)

	// Still there.
	_, err = s.GetCustomer(cust.ID)
	assert.NoError(t, err)

	// Removing the account clears the way.
	assert.NoError(t, s.DeleteAccount(acct.ID))
	assert.NoError(t, s.DeleteCustomer(cust.ID))
	_, err = s.GetCustomer(cust.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateAccount(t *testing.T) {
	s, _ := setupStore(t)

	cust := models.Customer{Name: "C", Email: "c@example.com", PhoneNumber: "1"}
	assert.NoError(t, s.CreateCustomer(&cust))

	acct, err := s.CreateAccount(cust.ID, "cuser", "hunter2")
	assert.NoError(t, err)
	assert.Greater(t, acct.ID, uint(0))
	assert.NotEqual(t, "hunter2", acct.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte("hunter2")))

	// One account per customer.
	_, err = s.CreateAccount(cust.ID, "cuser2", "pw")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Account for a customer that does not exist.
	_, err = s.CreateAccount(9999, "ghost", "pw")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateAccountRehashesPassword(t *testing.T) {
	s, _ := setupStore(t)

	cust := models.Customer{Name: "C", Email: "c2@example.com", PhoneNumber: "1"}
	assert.NoError(t, s.CreateCustomer(&cust))
	acct, err := s.CreateAccount(cust.ID, "cuser", "old-pass")
	assert.NoError(t, err)

	updated, err := s.UpdateAccount(acct.ID, "cuser-renamed", "new-pass")
	assert.NoError(t, err)
	assert.Equal(t, "cuser-renamed", updated.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-pass")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("old-pass")))
}

func TestProductRoundTrip(t *testing.T) {
	s, _ := setupStore(t)

	prod := models.Product{Name: "Laptop", Price: 1200.00}
	assert.NoError(t, s.CreateProduct(&prod))

	got, err := s.GetProduct(prod.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
	assert.Equal(t, 1200.00, got.Price)

	prods, err := s.ListProducts()
	assert.NoError(t, err)
	assert.Len(t, prods, 1)

	assert.NoError(t, s.DeleteProduct(prod.ID))
	assert.NoError(t, s.DeleteProduct(prod.ID)) // idempotent
	_, err = s.GetProduct(prod.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlaceOrder(t *testing.T) {
	s, testDB := setupStore(t)

	cust := models.Customer{Name: "Buyer", Email: "buyer@example.com", PhoneNumber: "1"}
	assert.NoError(t, s.CreateCustomer(&cust))
	prod := models.Product{Name: "Widget", Price: 10.00}
	assert.NoError(t, s.CreateProduct(&prod))

	order, total, err := s.PlaceOrder(cust.ID, []store.LineItem{{ProductID: prod.ID, Quantity: 2}})
	assert.NoError(t, err)
	assert.Greater(t, order.ID, uint(0))
	assert.Equal(t, cust.ID, order.CustomerID)
	assert.False(t, order.OrderDate.IsZero())
	assert.Equal(t, 20.00, total)

	lines, err := s.GetOrderLines(order.ID)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, prod.ID, lines[0].ProductID)
	assert.Equal(t, uint(2), lines[0].Quantity)

	var orderCount int64
	testDB.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(1), orderCount)
}

func TestPlaceOrderRollsBackOnUnknownProduct(t *testing.T) {
	s, testDB := setupStore(t)

	cust := models.Customer{Name: "Buyer", Email: "buyer2@example.com", PhoneNumber: "1"}
	assert.NoError(t, s.CreateCustomer(&cust))
	prod := models.Product{Name: "Widget", Price: 10.00}
	assert.NoError(t, s.CreateProduct(&prod))

	_, _, err := s.PlaceOrder(cust.ID, []store.LineItem{
		{ProductID: prod.ID, Quantity: 1},
		{ProductID: 99999, Quantity: 1},
	})

	var pnf *store.ProductNotFoundError
	assert.ErrorAs(t, err, &pnf)
	assert.Equal(t, uint(99999), pnf.ID)

	// Nothing persisted, header included.
	n, err := s.CountOrdersForCustomer(cust.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	var lineCount int64
	testDB.Model(&models.OrderLine{}).Count(&lineCount)
	assert.Equal(t, int64(0), lineCount)
}

func TestPlaceOrderValidation(t *testing.T) {
	s, _ := setupStore(t)

	cust := models.Customer{Name: "Buyer", Email: "buyer3@example.com", PhoneNumber: "1"}
	assert.NoError(t, s.CreateCustomer(&cust))
	prod := models.Product{Name: "Widget", Price: 10.00}
	assert.NoError(t, s.CreateProduct(&prod))

	_, _, err := s.PlaceOrder(cust.ID, nil)
	assert.ErrorIs(t, err, store.ErrNoLineItems)

	_, _, err = s.PlaceOrder(cust.ID, []store.LineItem{{ProductID: prod.ID, Quantity: 0}})
	assert.ErrorIs(t, err, store.ErrInvalidQuantity)

	n, err := s.CountOrdersForCustomer(cust.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
