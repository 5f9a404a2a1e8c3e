package database

import (
	"fmt"

	"optica-backend/models"
	"optica-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed loads the fixed demo dataset: five clients, ten products and
// seven historical sales. Sales are inserted as plain rows (their stock
// movements already happened; the listed stocks are post-sale values).
// No-op when the database already holds clients, so it is safe to call
// on every start.
func Seed() error {
	var count int64
	if err := DB.Model(&models.Client{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed precheck failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		for _, c := range seedClients() {
			c := c
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("seed client %s: %w", c.Id, err)
			}
		}
		for _, p := range seedProducts() {
			p := p
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("seed product %s: %w", p.Id, err)
			}
		}
		for _, s := range seedSales() {
			s := s
			if err := tx.Create(&s).Error; err != nil {
				return fmt.Errorf("seed sale %s: %w", s.Id, err)
			}
		}
		return nil
	})
}

func seedClients() []models.Client {
	return []models.Client{
		{
			Id: "c1", FullName: "María García López", Phone: "555-0101", Email: "maria@email.com",
			LastExamDate: utils.DaysAgo(30), ExamInStore: true,
			Prescription: datatypes.NewJSONType(models.Prescription{
				ODSphere: "-2.00", ODCylinder: "-0.75", ODAxis: "180",
				OISphere: "-1.75", OICylinder: "-0.50", OIAxis: "175",
			}),
			Notes: "Prefiere armazones ligeros", LastPurchaseDate: utils.DaysAgo(30),
		},
		{
			Id: "c2", FullName: "Carlos Rodríguez Pérez", Phone: "555-0202", Email: "carlos@email.com",
			LastExamDate: utils.DaysAgo(60), ExamInStore: false,
			Prescription: datatypes.NewJSONType(models.Prescription{
				ODSphere: "+1.50", ODCylinder: "-0.25", ODAxis: "90", ODAddition: "+2.00",
				OISphere: "+1.25", OICylinder: "-0.50", OIAxis: "85", OIAddition: "+2.00",
			}),
			Notes: "Usa lentes progresivos", LastPurchaseDate: utils.DaysAgo(15),
		},
		{
			Id: "c3", FullName: "Ana Martínez Ruiz", Phone: "555-0303", Email: "ana@email.com",
			LastExamDate: utils.DaysAgo(90), ExamInStore: true,
			Prescription: datatypes.NewJSONType(models.Prescription{
				ODSphere: "-4.00", ODCylinder: "-1.25", ODAxis: "10",
				OISphere: "-3.75", OICylinder: "-1.00", OIAxis: "170",
			}),
			LastPurchaseDate: utils.DaysAgo(5),
		},
		{
			Id: "c4", FullName: "Roberto Sánchez Villa", Phone: "555-0404", Email: "roberto@email.com",
			LastExamDate: utils.DaysAgo(120), ExamInStore: true,
			Prescription: datatypes.NewJSONType(models.Prescription{
				ODSphere: "-0.50", OISphere: "-0.75",
			}),
			Notes: "Solo para conducir", LastPurchaseDate: utils.DaysAgo(120),
		},
		{
			Id: "c5", FullName: "Laura Díaz Fernández", Phone: "555-0505", Email: "laura@email.com",
			LastExamDate: utils.DaysAgo(10), ExamInStore: false,
			Prescription: datatypes.NewJSONType(models.Prescription{
				ODSphere: "-3.25", ODCylinder: "-0.50", ODAxis: "45",
				OISphere: "-3.00", OICylinder: "-0.75", OIAxis: "135",
			}),
			Notes: "Interesada en lentes de contacto", LastPurchaseDate: utils.DaysAgo(10),
		},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{Id: "p1", SKU: "ARM-001", Brand: "Ray-Ban", Model: "Aviator Classic", Type: models.TypeFrame, Category: models.CategoryFrames, CostPrice: 800, SellingPrice: 1800, Stock: 12},
		{Id: "p2", SKU: "ARM-002", Brand: "Oakley", Model: "Holbrook", Type: models.TypeFrame, Category: models.CategoryFrames, CostPrice: 950, SellingPrice: 2200, Stock: 8},
		{Id: "p3", SKU: "ARM-003", Brand: "Guess", Model: "GU2700", Type: models.TypeFrame, Category: models.CategoryFrames, CostPrice: 600, SellingPrice: 1400, Stock: 3},
		{Id: "p4", SKU: "ARM-004", Brand: "Vogue", Model: "VO5286", Type: models.TypeFrame, Category: models.CategoryFrames, CostPrice: 500, SellingPrice: 1200, Stock: 15},
		{Id: "p5", SKU: "ARM-005", Brand: "Michael Kors", Model: "MK3053", Type: models.TypeFrame, Category: models.CategoryFrames, CostPrice: 1100, SellingPrice: 2500, Stock: 2},
		{Id: "p6", SKU: "LEN-001", Brand: "Essilor", Model: "Crizal Alizé", Type: models.TypeSingleVision, Category: models.CategoryLenses, CostPrice: 400, SellingPrice: 950, Stock: 25},
		{Id: "p7", SKU: "LEN-002", Brand: "Essilor", Model: "Varilux Comfort", Type: models.TypeProgressive, Category: models.CategoryLenses, CostPrice: 1200, SellingPrice: 2800, Stock: 10},
		{Id: "p8", SKU: "LEN-003", Brand: "Hoya", Model: "Nulux EP", Type: models.TypeSingleVision, Category: models.CategoryLenses, CostPrice: 350, SellingPrice: 850, Stock: 4},
		{Id: "p9", SKU: "LEN-004", Brand: "Zeiss", Model: "SmartLife Bifocal", Type: models.TypeBifocal, Category: models.CategoryLenses, CostPrice: 900, SellingPrice: 2100, Stock: 6},
		{Id: "p10", SKU: "CON-001", Brand: "Acuvue", Model: "Oasys", Type: models.TypeContact, Category: models.CategoryLenses, CostPrice: 250, SellingPrice: 600, Stock: 30},
	}
}

func seedSales() []models.Sale {
	return []models.Sale{
		{
			Id: "s1", ClientId: "c1", ClientName: "María García López",
			Items: []models.SaleItem{
				{ProductId: "p1", ProductName: "Ray-Ban Aviator Classic", Quantity: 1, UnitPrice: 1800, CostPrice: 800},
				{ProductId: "p6", ProductName: "Essilor Crizal Alizé", Quantity: 2, UnitPrice: 950, CostPrice: 400},
			},
			Subtotal: 3700, Discount: 200, Total: 3500, Profit: 1900, Date: utils.DaysAgo(0),
		},
		{
			Id: "s2", ClientId: "c2", ClientName: "Carlos Rodríguez Pérez",
			Items: []models.SaleItem{
				{ProductId: "p2", ProductName: "Oakley Holbrook", Quantity: 1, UnitPrice: 2200, CostPrice: 950},
				{ProductId: "p7", ProductName: "Essilor Varilux Comfort", Quantity: 2, UnitPrice: 2800, CostPrice: 1200},
			},
			Subtotal: 7800, Discount: 500, Total: 7300, Profit: 3950, Date: utils.DaysAgo(1),
		},
		{
			Id: "s3", ClientId: "c3", ClientName: "Ana Martínez Ruiz",
			Items: []models.SaleItem{
				{ProductId: "p4", ProductName: "Vogue VO5286", Quantity: 1, UnitPrice: 1200, CostPrice: 500},
				{ProductId: "p8", ProductName: "Hoya Nulux EP", Quantity: 2, UnitPrice: 850, CostPrice: 350},
			},
			Subtotal: 2900, Discount: 0, Total: 2900, Profit: 1700, Date: utils.DaysAgo(2),
		},
		{
			Id: "s4", ClientId: "c5", ClientName: "Laura Díaz Fernández",
			Items: []models.SaleItem{
				{ProductId: "p10", ProductName: "Acuvue Oasys", Quantity: 4, UnitPrice: 600, CostPrice: 250},
			},
			Subtotal: 2400, Discount: 100, Total: 2300, Profit: 900, Date: utils.DaysAgo(3),
		},
		{
			Id: "s5", ClientId: "c4", ClientName: "Roberto Sánchez Villa",
			Items: []models.SaleItem{
				{ProductId: "p3", ProductName: "Guess GU2700", Quantity: 1, UnitPrice: 1400, CostPrice: 600},
				{ProductId: "p6", ProductName: "Essilor Crizal Alizé", Quantity: 2, UnitPrice: 950, CostPrice: 400},
			},
			Subtotal: 3300, Discount: 150, Total: 3150, Profit: 1500, Date: utils.DaysAgo(4),
		},
		{
			Id: "s6", ClientId: "c1", ClientName: "María García López",
			Items: []models.SaleItem{
				{ProductId: "p5", ProductName: "Michael Kors MK3053", Quantity: 1, UnitPrice: 2500, CostPrice: 1100},
			},
			Subtotal: 2500, Discount: 0, Total: 2500, Profit: 1400, Date: utils.DaysAgo(5),
		},
		{
			Id: "s7", ClientId: "c3", ClientName: "Ana Martínez Ruiz",
			Items: []models.SaleItem{
				{ProductId: "p9", ProductName: "Zeiss SmartLife Bifocal", Quantity: 2, UnitPrice: 2100, CostPrice: 900},
			},
			Subtotal: 4200, Discount: 300, Total: 3900, Profit: 2100, Date: utils.DaysAgo(6),
		},
	}
}
