package main

import (
	"log"
	"time"

	"frontdesk/internal/config"
	"frontdesk/internal/database"
	"frontdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM staff_users")
	db.Exec("DELETE FROM hotel_settings")

	// ================== SETTINGS ==================
	log.Println("Creating hotel settings...")
	db.Create(&domain.HotelSettings{
		ID:           1,
		HotelName:    "Harbor Light Hotel",
		Address:      "12 Seafront Avenue",
		Phone:        "+351 21 000 0000",
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
		Timezone:     "Europe/Lisbon",
	})

	// ================== STAFF ==================
	log.Println("Creating staff accounts...")
	createStaff(db, "manager@harborlight.example", "manager123", "Marta Sousa", domain.RoleManager)
	createStaff(db, "rui@harborlight.example", "desk123", "Rui Almeida", domain.RoleDesk)
	createStaff(db, "ines@harborlight.example", "desk123", "Inês Carvalho", domain.RoleDesk)

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")
	standard := domain.RoomType{
		Name:        "Standard Queen",
		Description: "Cosy queen room facing the courtyard",
		Capacity:    2,
		NightlyRate: 90,
		Amenities:   []string{"wifi", "tv", "air conditioning"},
	}
	deluxe := domain.RoomType{
		Name:        "Deluxe King",
		Description: "King bed, sea view, walk-in shower",
		Capacity:    3,
		NightlyRate: 140,
		Amenities:   []string{"wifi", "tv", "air conditioning", "minibar", "sea view"},
	}
	suite := domain.RoomType{
		Name:        "Family Suite",
		Description: "Two bedrooms and a living area for up to five guests",
		Capacity:    5,
		NightlyRate: 220,
		Amenities:   []string{"wifi", "tv", "air conditioning", "minibar", "kitchenette", "balcony"},
	}
	db.Create(&standard)
	db.Create(&deluxe)
	db.Create(&suite)

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{RoomTypeID: standard.ID, Number: "101", Floor: 1, Active: true},
		{RoomTypeID: standard.ID, Number: "102", Floor: 1, Active: true},
		{RoomTypeID: standard.ID, Number: "103", Floor: 1, Active: true},
		{RoomTypeID: standard.ID, Number: "104", Floor: 1, Active: false, Notes: "Water damage, closed for repairs"},
		{RoomTypeID: deluxe.ID, Number: "201", Floor: 2, Active: true},
		{RoomTypeID: deluxe.ID, Number: "202", Floor: 2, Active: true},
		{RoomTypeID: deluxe.ID, Number: "203", Floor: 2, Active: true},
		{RoomTypeID: suite.ID, Number: "301", Floor: 3, Active: true},
		{RoomTypeID: suite.ID, Number: "302", Floor: 3, Active: true},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}
	// gorm drops zero-valued fields that carry a default tag on insert,
	// so the closed room needs an explicit update.
	db.Model(&domain.Room{}).Where("number = ?", "104").Update("active", false)

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	customers := []domain.Customer{
		{FullName: "José García", Email: "jose.garcia@example.com", Phone: "+34 612 345 678", Document: "X1234567A"},
		{FullName: "John Smith", Email: "john.smith@example.com", Phone: "+44 7700 900123", Document: "GB998877"},
		{FullName: "Ana Müller", Email: "ana.mueller@example.com", Phone: "+49 151 2345 6789", Document: "DE554433"},
		{FullName: "Marie Dubois", Email: "marie.dubois@example.com", Phone: "+33 6 12 34 56 78"},
		{FullName: "Pedro Álvares", Email: "pedro.alvares@example.com", Phone: "+351 91 234 5678", Document: "PT112233", Notes: "Returning guest, prefers high floors"},
	}
	for i := range customers {
		db.Create(&customers[i])
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")
	today := time.Now()
	day := func(offset int) time.Time {
		d := today.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	pastCheckIn := day(-7).Add(15*time.Hour + 30*time.Minute)
	pastCheckOut := day(-4).Add(10*time.Hour + 45*time.Minute)
	currentCheckIn := day(-1).Add(16 * time.Hour)
	room101 := rooms[0].ID
	room201 := rooms[4].ID
	room301 := rooms[7].ID

	seedReservations := []domain.Reservation{
		{
			ID:           "RSV-SEED01",
			CustomerID:   customers[0].ID,
			RoomTypeID:   standard.ID,
			RoomID:       &room101,
			CheckInDate:  day(-7),
			CheckOutDate: day(-4),
			Guests:       2,
			TotalAmount:  3 * standard.NightlyRate,
			Status:       domain.ReservationCheckedOut,
			CheckedInAt:  &pastCheckIn,
			CheckedOutAt: &pastCheckOut,
		},
		{
			ID:              "RSV-SEED02",
			CustomerID:      customers[1].ID,
			RoomTypeID:      deluxe.ID,
			RoomID:          &room201,
			CheckInDate:     day(-1),
			CheckOutDate:    day(2),
			Guests:          2,
			TotalAmount:     3 * deluxe.NightlyRate,
			Status:          domain.ReservationCheckedIn,
			CheckedInAt:     &currentCheckIn,
			SpecialRequests: "Late breakfast, extra pillows",
		},
		{
			ID:           "RSV-SEED03",
			CustomerID:   customers[2].ID,
			RoomTypeID:   standard.ID,
			CheckInDate:  day(3),
			CheckOutDate: day(5),
			Guests:       2,
			TotalAmount:  2 * standard.NightlyRate,
			Status:       domain.ReservationConfirmed,
		},
		{
			ID:              "RSV-SEED04",
			CustomerID:      customers[4].ID,
			RoomTypeID:      suite.ID,
			RoomID:          &room301,
			CheckInDate:     day(1),
			CheckOutDate:    day(4),
			Guests:          4,
			TotalAmount:     3 * suite.NightlyRate,
			Status:          domain.ReservationConfirmed,
			SpecialRequests: "Crib for the youngest",
		},
		{
			ID:           "RSV-SEED05",
			CustomerID:   customers[3].ID,
			RoomTypeID:   deluxe.ID,
			CheckInDate:  day(1),
			CheckOutDate: day(2),
			Guests:       1,
			TotalAmount:  deluxe.NightlyRate,
			Status:       domain.ReservationCancelled,
			CancelReason: "Guest called to cancel",
		},
	}
	for i := range seedReservations {
		db.Create(&seedReservations[i])
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Manager: manager@harborlight.example / manager123")
	log.Println("Desk:    rui@harborlight.example / desk123")
	log.Println("Desk:    ines@harborlight.example / desk123")
}

func createStaff(db *gorm.DB, email, password, name string, role domain.StaffRole) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash password failed:", err)
	}
	db.Create(&domain.StaffUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	})
}
