package database

import (
	"log"
	"time"

	"peoplepulse/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll loads a demo company with an owner and one employee. Idempotent:
// rerunning updates nothing except the owner password, which is forced back
// to the demo value.
func SeedAll(db *gorm.DB) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tenant := model.Tenant{
		Name:     "Acme Widgets Ltd",
		Email:    "hello@acme.test",
		Phone:    "+1 555 0100",
		Address:  "1 Factory Lane, Springfield",
		IsActive: true,
	}
	db.FirstOrCreate(&tenant, model.Tenant{Name: tenant.Name})

	ownerUser := model.User{Email: "owner@acme.test", Password: string(hashed)}
	db.FirstOrCreate(&ownerUser, model.User{Email: ownerUser.Email})
	db.Model(&ownerUser).Update("password", string(hashed))

	owner := model.Member{
		UserID:     ownerUser.ID,
		TenantID:   tenant.ID,
		EmployeeID: "EMP-OWNER1",
		FirstName:  "Olivia",
		LastName:   "Owner",
		Email:      ownerUser.Email,
		Department: "Management",
		Position:   "CEO",
		HireDate:   time.Now().Format("2006-01-02"),
		Role:       model.RoleOwner,
	}
	db.FirstOrCreate(&owner, model.Member{UserID: ownerUser.ID})

	employeeUser := model.User{Email: "employee@acme.test", Password: string(hashed)}
	db.FirstOrCreate(&employeeUser, model.User{Email: employeeUser.Email})

	employee := model.Member{
		UserID:     employeeUser.ID,
		TenantID:   tenant.ID,
		EmployeeID: "EMP-STAFF1",
		FirstName:  "Evan",
		LastName:   "Employee",
		Email:      employeeUser.Email,
		Department: "Engineering",
		Position:   "Technician",
		HireDate:   time.Now().Format("2006-01-02"),
		Salary:     42000,
		Role:       model.RoleEmployee,
		ManagerID:  &owner.ID,
	}
	db.FirstOrCreate(&employee, model.Member{UserID: employeeUser.ID})

	year := time.Now().Year()
	for _, memberID := range []uint{owner.ID, employee.ID} {
		balance := model.NewLeaveBalance(memberID, year)
		db.FirstOrCreate(&balance, model.LeaveBalance{MemberID: memberID, Year: year})
	}

	announcement := model.Announcement{
		TenantID: tenant.ID,
		AuthorID: owner.ID,
		Title:    "Welcome to PeoplePulse",
		Content:  "Check in daily and submit leave requests from your dashboard.",
		IsActive: true,
	}
	db.FirstOrCreate(&announcement, model.Announcement{TenantID: tenant.ID, Title: announcement.Title})

	log.Println("Seeding complete: owner@acme.test / employee@acme.test (password123)")
}
