// Command seed loads development fixtures: roles, an admin account,
// suppliers, products, staff, expenses and a handful of sales so the
// dashboard has something to show. Safe to re-run; existing rows are kept.
package main

import (
	"log"
	"time"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/sequence"
	"go-retail-api/internal/service"
	"go-retail-api/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.Role{}, &model.User{},
		&model.Supplier{}, &model.Product{}, &model.Staff{},
		&model.Sale{}, &model.SaleItem{},
		&model.PurchaseOrder{}, &model.PurchaseOrderItem{},
		&model.Expense{},
		&sequence.Counter{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	admin := seedUsers(db)
	suppliers := seedSuppliers(db)
	products := seedProducts(db, suppliers)
	seedStaff(db)
	seedExpenses(db)
	seedSales(db, products, admin)

	log.Println("Seed complete")
}

func seedUsers(db *gorm.DB) *model.User {
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	if existing, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return existing
	}

	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		log.Fatalf("admin role missing: %v", err)
	}

	admin := &model.User{
		Email:     "admin@example.com",
		FirstName: "System",
		LastName:  "Administrator",
		RoleID:    &adminRole.ID,
		IsActive:  true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	log.Println("Created admin user admin@example.com / admin123")
	return admin
}

func seedSuppliers(db *gorm.DB) []model.Supplier {
	suppliers := []model.Supplier{
		{
			Name:    "FreshFarm Dairy Co",
			Contact: "orders@freshfarm.example",
			Phone:   "+91-98100-11223",
			Address: model.SupplierAddress{
				Street: "14 Dairy Lane", City: "Pune", State: "Maharashtra",
				ZipCode: "411001", Country: "India",
			},
			ContactPerson: model.ContactPerson{
				Name: "Asha Patel", Position: "Account Manager",
				Phone: "+91-98100-11224", Email: "asha@freshfarm.example",
			},
			PaymentTerms: "Net 15",
			CreditLimit:  50000,
			Rating:       4,
			IsActive:     true,
		},
		{
			Name:    "Metro Electronics Ltd",
			Contact: "sales@metroelec.example",
			Phone:   "+91-98200-55667",
			Address: model.SupplierAddress{
				Street: "2nd Floor, Tech Park", City: "Bengaluru", State: "Karnataka",
				ZipCode: "560001", Country: "India",
			},
			ContactPerson: model.ContactPerson{
				Name: "Ravi Kumar", Position: "Sales Lead",
				Phone: "+91-98200-55668", Email: "ravi@metroelec.example",
			},
			PaymentTerms: "Net 30",
			CreditLimit:  200000,
			Rating:       5,
			IsActive:     true,
		},
	}

	for i := range suppliers {
		var existing model.Supplier
		if err := db.Where("name = ?", suppliers[i].Name).First(&existing).Error; err == nil {
			suppliers[i] = existing
			continue
		}
		if err := db.Create(&suppliers[i]).Error; err != nil {
			log.Fatalf("failed to seed supplier %s: %v", suppliers[i].Name, err)
		}
	}
	log.Printf("Seeded %d suppliers", len(suppliers))
	return suppliers
}

func seedProducts(db *gorm.DB, suppliers []model.Supplier) []model.Product {
	dairy := suppliers[0].ID
	electronics := suppliers[1].ID

	products := []model.Product{
		{SKU: "MILK-1L", Name: "Full Cream Milk 1L", Category: "Dairy Products", Price: 68, Cost: 52, Stock: 120, MinStock: 30, MaxStock: 300, Unit: "bottle", SupplierID: &dairy, IsActive: true},
		{SKU: "PANEER-200", Name: "Paneer 200g", Category: "Dairy Products", Price: 95, Cost: 70, Stock: 18, MinStock: 20, MaxStock: 100, Unit: "pack", SupplierID: &dairy, IsActive: true},
		{SKU: "USB-C-CBL", Name: "USB-C Cable 1m", Category: "Electronics", Price: 349, Cost: 180, Stock: 75, MinStock: 15, MaxStock: 200, Unit: "piece", SupplierID: &electronics, IsActive: true},
		{SKU: "EARBUD-X2", Name: "Wireless Earbuds X2", Category: "Electronics", Price: 2499, Cost: 1650, Stock: 0, MinStock: 5, MaxStock: 50, Unit: "piece", SupplierID: &electronics, IsActive: true},
		{SKU: "NOTEBK-A5", Name: "A5 Ruled Notebook", Category: "Stationary", Price: 60, Cost: 32, Stock: 240, MinStock: 50, MaxStock: 500, Unit: "piece", IsActive: true},
		{SKU: "FOOTBALL-5", Name: "Size 5 Football", Category: "Sports", Price: 899, Cost: 540, Stock: 22, MinStock: 8, MaxStock: 60, Unit: "piece", IsActive: true},
	}

	for i := range products {
		var existing model.Product
		if err := db.Where("sku = ?", products[i].SKU).First(&existing).Error; err == nil {
			products[i] = existing
			continue
		}
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("failed to seed product %s: %v", products[i].SKU, err)
		}
	}
	log.Printf("Seeded %d products", len(products))
	return products
}

func seedStaff(db *gorm.DB) {
	joined := func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	staff := []model.Staff{
		{Name: "Meera Shah", Position: "Store Manager", Department: "Management", Salary: 65000, Address: "12 Rose Villa, Pune", JoinDate: joined(4), Experience: "8 years", Contact: "+91-90000-10001", Email: "meera@example.com", Status: model.StaffActive,
			EmergencyContact: model.EmergencyContact{Name: "Raj Shah", Relationship: "Spouse", Phone: "+91-90000-10002"}},
		{Name: "Arjun Nair", Position: "Sales Associate", Department: "Sales", Salary: 28000, Address: "5 Lake View, Pune", JoinDate: joined(2), Experience: "3 years", Contact: "+91-90000-10003", Email: "arjun@example.com", Status: model.StaffActive},
		{Name: "Divya Rao", Position: "Inventory Clerk", Department: "Inventory", Salary: 26000, Address: "88 Hill Road, Pune", JoinDate: joined(1), Experience: "2 years", Contact: "+91-90000-10005", Email: "divya@example.com", Status: model.StaffActive},
		{Name: "Karan Mehta", Position: "Accountant", Department: "Finance", Salary: 42000, Address: "3 Green Park, Pune", JoinDate: joined(3), Experience: "6 years", Contact: "+91-90000-10007", Email: "karan@example.com", Status: model.StaffInactive},
	}

	for i := range staff {
		var existing model.Staff
		if err := db.Where("email = ?", staff[i].Email).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&staff[i]).Error; err != nil {
			log.Fatalf("failed to seed staff %s: %v", staff[i].Email, err)
		}
	}
	log.Printf("Seeded %d staff members", len(staff))
}

func seedExpenses(db *gorm.DB) {
	var count int64
	db.Model(&model.Expense{}).Count(&count)
	if count > 0 {
		return
	}

	expenseService := service.NewExpenseService(repository.NewExpenseRepo(db), db)
	expenses := []model.Expense{
		{Category: "Rent", Description: "Store rent for the month", Amount: 45000, PaymentMethod: "bank_transfer", Status: model.ExpenseApproved,
			Vendor:    model.ExpenseVendor{Name: "Krishna Properties", Contact: "lease@krishnaprops.example", Phone: "+91-95555-00011"},
			Recurring: model.ExpenseRecurrence{IsRecurring: true, Frequency: "monthly"}},
		{Category: "Utilities", Description: "Electricity bill", Amount: 6800, PaymentMethod: "upi", Status: model.ExpensePaid},
		{Category: "Office Supplies", Description: "Printer paper and toner", Amount: 2300, PaymentMethod: "card", Status: model.ExpensePending,
			Vendor: model.ExpenseVendor{Name: "City Stationers", Phone: "+91-95555-00022"}},
	}

	for i := range expenses {
		if _, err := expenseService.Create(&expenses[i]); err != nil {
			log.Fatalf("failed to seed expense %q: %v", expenses[i].Description, err)
		}
	}
	log.Printf("Seeded %d expenses", len(expenses))
}

func seedSales(db *gorm.DB, products []model.Product, admin *model.User) {
	var count int64
	db.Model(&model.Sale{}).Count(&count)
	if count > 0 {
		return
	}

	saleService := service.NewSaleService(
		repository.NewSaleRepo(db), repository.NewProductRepo(db), db, nil)

	milk, cable := products[0], products[2]
	sales := []model.Sale{
		{
			Customer: model.SaleCustomer{Name: "Walk-in Customer"},
			Items: []model.SaleItem{
				{ProductID: milk.ID, Quantity: 2, UnitPrice: milk.Price},
			},
			PaymentMethod: "cash",
			PaymentStatus: model.PaymentPaid,
			Channel:       "POS",
			Status:        model.SaleDelivered,
		},
		{
			Customer: model.SaleCustomer{Name: "Priya Desai", Email: "priya@example.com", Phone: "+91-90909-12345"},
			Items: []model.SaleItem{
				{ProductID: cable.ID, Quantity: 1, UnitPrice: cable.Price},
				{ProductID: milk.ID, Quantity: 4, UnitPrice: milk.Price},
			},
			Tax:           62,
			PaymentMethod: "upi",
			PaymentStatus: model.PaymentPaid,
			Channel:       "Online",
			Status:        model.SaleConfirmed,
		},
	}

	for i := range sales {
		if _, err := saleService.Create(&sales[i], admin.ID.String()); err != nil {
			log.Fatalf("failed to seed sale for %s: %v", sales[i].Customer.Name, err)
		}
	}
	log.Printf("Seeded %d sales", len(sales))
}
