// Package placeholder holds the fixed records the dashboard demo is seeded
// with.
package placeholder

import (
	"time"

	"dashboard-seed-backend/internal/models"

	"gorm.io/datatypes"
)

type Dataset struct {
	Users     []models.User
	Customers []models.Customer
	Invoices  []models.Invoice
	Revenue   []models.Revenue
}

var users = []models.User{
	{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var customers = []models.Customer{
	{
		ID:       "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       "76d65c26-f784-44a2-ac19-586678f7c2f2",
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       "cc27c14a-0acf-4f4a-a6c9-d45682c144b9",
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       "13d07535-c59e-4157-a011-f8d2ef4e0cbb",
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

var invoices = []models.Invoice{
	invoice(0, 15795, models.InvoicePending, "2022-12-06"),
	invoice(1, 20348, models.InvoicePending, "2022-11-14"),
	invoice(4, 3040, models.InvoicePaid, "2022-10-29"),
	invoice(3, 44800, models.InvoicePaid, "2023-09-10"),
	invoice(5, 34577, models.InvoicePending, "2023-08-05"),
	invoice(2, 54246, models.InvoicePending, "2023-07-16"),
	invoice(0, 666, models.InvoicePending, "2023-06-27"),
	invoice(3, 32545, models.InvoicePaid, "2023-06-09"),
	invoice(4, 1250, models.InvoicePaid, "2023-06-17"),
	invoice(5, 8546, models.InvoicePaid, "2023-06-07"),
	invoice(1, 500, models.InvoicePaid, "2023-08-19"),
	invoice(5, 8945, models.InvoicePaid, "2023-06-03"),
	invoice(2, 1000, models.InvoicePaid, "2022-06-05"),
}

var revenue = []models.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

// Default returns a copy of the dashboard placeholder data, safe for the
// caller to modify.
func Default() Dataset {
	return Dataset{
		Users:     append([]models.User(nil), users...),
		Customers: append([]models.Customer(nil), customers...),
		Invoices:  append([]models.Invoice(nil), invoices...),
		Revenue:   append([]models.Revenue(nil), revenue...),
	}
}

func invoice(customer int, amount int, status models.InvoiceStatus, date string) models.Invoice {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic("placeholder: bad invoice date " + date)
	}
	return models.Invoice{
		CustomerID: customers[customer].ID,
		Amount:     amount,
		Status:     status,
		Date:       datatypes.Date(d),
	}
}
