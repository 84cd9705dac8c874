package database

import (
	"fmt"
	"log"
	"time"

	"github.com/autoassign/api/model"
	"github.com/autoassign/api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// RunSeeds is the entry point used by cmd/seed
func RunSeeds(db *gorm.DB) error {
	return NewSeeder(db).SeedAll()
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	// Run seeds in order (respecting foreign key constraints)
	if err := s.SeedDepartments(); err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}

	if err := s.SeedBatches(); err != nil {
		return fmt.Errorf("failed to seed batches: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	if err := s.SeedFaculties(); err != nil {
		return fmt.Errorf("failed to seed faculties: %w", err)
	}

	if err := s.SeedStudents(); err != nil {
		return fmt.Errorf("failed to seed students: %w", err)
	}

	if err := s.SeedAssociations(); err != nil {
		return fmt.Errorf("failed to seed associations: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedDepartments creates the sample departments
func (s *Seeder) SeedDepartments() error {
	var count int64
	if err := s.db.Model(&model.Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Departments already exist, skipping...")
		return nil
	}

	departments := []model.Department{
		{Code: "CS", Name: "Computer Science"},
		{Code: "MA", Name: "Mathematics"},
	}
	if err := s.db.Create(&departments).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d departments\n", len(departments))
	return nil
}

// SeedBatches creates one batch per department
func (s *Seeder) SeedBatches() error {
	var count int64
	if err := s.db.Model(&model.Batch{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Batches already exist, skipping...")
		return nil
	}

	cs, ma, err := s.sampleDepartments()
	if err != nil {
		return err
	}

	batches := []model.Batch{
		{Name: "2025", Semester: 4, Year: 2025, DeptID: cs.ID},
		{Name: "2024", Semester: 2, Year: 2024, DeptID: ma.ID},
	}
	if err := s.db.Create(&batches).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d batches\n", len(batches))
	return nil
}

// SeedCourses creates the sample courses
func (s *Seeder) SeedCourses() error {
	var count int64
	if err := s.db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Courses already exist, skipping...")
		return nil
	}

	cs, ma, err := s.sampleDepartments()
	if err != nil {
		return err
	}

	courses := []model.Course{
		{SubjectCode: "CS101", Title: "Data Structures", DeptID: cs.ID},
		{SubjectCode: "CS102", Title: "Database Management", DeptID: cs.ID},
		{SubjectCode: "MA101", Title: "Calculus", DeptID: ma.ID},
	}
	if err := s.db.Create(&courses).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d courses\n", len(courses))
	return nil
}

// SeedFaculties creates the sample faculty accounts. Default passwords
// follow the production rule (email local-part, bcrypt-hashed).
func (s *Seeder) SeedFaculties() error {
	var count int64
	if err := s.db.Model(&model.Faculty{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Faculties already exist, skipping...")
		return nil
	}

	samples := []struct {
		name       string
		department string
		email      string
	}{
		{"Dr. Mehta", "Computer Science", "mehta@univ.edu"},
		{"Prof. Shah", "Mathematics", "shah@univ.edu"},
	}

	for _, sample := range samples {
		hash, err := auth.HashPassword(auth.DefaultFacultyPassword(sample.email))
		if err != nil {
			return err
		}
		faculty := model.Faculty{
			Name:         sample.name,
			Department:   sample.department,
			Email:        sample.email,
			PasswordHash: hash,
		}
		if err := s.db.Create(&faculty).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d faculty accounts\n", len(samples))
	return nil
}

// SeedStudents creates the sample students. Default passwords follow the
// production rule (DDMMYYYY of the date of birth, bcrypt-hashed).
func (s *Seeder) SeedStudents() error {
	var count int64
	if err := s.db.Model(&model.Student{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Students already exist, skipping...")
		return nil
	}

	batch2025, batch2024, err := s.sampleBatches()
	if err != nil {
		return err
	}

	samples := []struct {
		id    string
		name  string
		email string
		dob   string
		batch uint
	}{
		{"S001", "Amit Patel", "amit@univ.edu", "2003-05-10", batch2025.ID},
		{"S002", "Riya Sharma", "riya@univ.edu", "2003-09-15", batch2025.ID},
		{"S003", "Karan Joshi", "karan@univ.edu", "2002-12-01", batch2024.ID},
	}

	for _, sample := range samples {
		dob, err := time.Parse("2006-01-02", sample.dob)
		if err != nil {
			return err
		}
		hash, err := auth.HashPassword(auth.DefaultStudentPassword(dob))
		if err != nil {
			return err
		}
		student := model.Student{
			StudentID:    sample.id,
			Name:         sample.name,
			Email:        sample.email,
			DOB:          dob,
			BatchID:      sample.batch,
			PasswordHash: hash,
		}
		if err := s.db.Create(&student).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d students\n", len(samples))
	return nil
}

// SeedAssociations creates the teaches and takes rows
func (s *Seeder) SeedAssociations() error {
	var count int64
	if err := s.db.Model(&model.Teaches{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Associations already exist, skipping...")
		return nil
	}

	batch2025, batch2024, err := s.sampleBatches()
	if err != nil {
		return err
	}

	var mehta, shah model.Faculty
	if err := s.db.First(&mehta, "email = ?", "mehta@univ.edu").Error; err != nil {
		return err
	}
	if err := s.db.First(&shah, "email = ?", "shah@univ.edu").Error; err != nil {
		return err
	}

	teaches := []model.Teaches{
		{FacultyID: mehta.FacultyID, SubjectCode: "CS101", BatchID: batch2025.ID},
		{FacultyID: mehta.FacultyID, SubjectCode: "CS102", BatchID: batch2025.ID},
		{FacultyID: shah.FacultyID, SubjectCode: "MA101", BatchID: batch2024.ID},
	}
	if err := s.db.Create(&teaches).Error; err != nil {
		return err
	}

	takes := []model.Takes{
		{StudentID: "S001", SubjectCode: "CS101", Semester: 4},
		{StudentID: "S002", SubjectCode: "CS101", Semester: 4},
		{StudentID: "S003", SubjectCode: "MA101", Semester: 2},
	}
	if err := s.db.Create(&takes).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d teaches and %d takes rows\n", len(teaches), len(takes))
	return nil
}

func (s *Seeder) sampleDepartments() (cs model.Department, ma model.Department, err error) {
	if err = s.db.First(&cs, "code = ?", "CS").Error; err != nil {
		return
	}
	err = s.db.First(&ma, "code = ?", "MA").Error
	return
}

func (s *Seeder) sampleBatches() (b2025 model.Batch, b2024 model.Batch, err error) {
	if err = s.db.First(&b2025, "name = ?", "2025").Error; err != nil {
		return
	}
	err = s.db.First(&b2024, "name = ?", "2024").Error
	return
}
