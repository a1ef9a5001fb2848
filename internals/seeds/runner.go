package seeds

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	presensiModel "presensiku_backend/internals/features/attendance/presence/model"
	sanggaModel "presensiku_backend/internals/features/master/sangga/model"
	siswaModel "presensiku_backend/internals/features/master/siswa/model"
	authModel "presensiku_backend/internals/features/users/auth/model"
)

// Run menyiapkan skema + data awal. Idempoten: aman dijalankan berulang.
func Run(db *gorm.DB) error {
	log.Println("🌱 Menjalankan seeder...")

	if err := db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklist{},
		&sanggaModel.SanggaModel{},
		&siswaModel.SiswaModel{},
		&presensiModel.PresensiModel{},
	); err != nil {
		return err
	}

	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedSangga(db); err != nil {
		return err
	}
	if err := seedSiswa(db); err != nil {
		return err
	}

	log.Println("✅ Seeder selesai")
	return nil
}

func seedAdmin(db *gorm.DB) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "presensiku123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := authModel.UserModel{
		UserName: "admin",
		Email:    "admin@presensiku.id",
		Password: string(hash),
		Role:     "admin",
		IsActive: true,
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Println("ℹ️ User admin sudah ada, dilewati.")
	} else {
		log.Println("👤 User admin dibuat.")
	}
	return nil
}

func seedSangga(db *gorm.DB) error {
	names := []string{"Perintis", "Pencoba", "Pendobrak", "Penegas", "Pelaksana"}

	var rows []sanggaModel.SanggaModel
	for _, n := range names {
		rows = append(rows, sanggaModel.SanggaModel{SanggaNama: n})
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return res.Error
	}
	log.Printf("🏕 Sangga: %d baris baru.", res.RowsAffected)
	return nil
}

func seedSiswa(db *gorm.DB) error {
	var total int64
	if err := db.Model(&siswaModel.SiswaModel{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		log.Println("ℹ️ Data siswa sudah ada, dilewati.")
		return nil
	}

	var sanggas []sanggaModel.SanggaModel
	if err := db.Order("sangga_nama ASC").Find(&sanggas).Error; err != nil {
		return err
	}
	if len(sanggas) == 0 {
		return nil
	}

	nama := []string{
		"Adit Pratama", "Bunga Lestari", "Citra Dewi", "Dimas Saputra",
		"Eka Ramadhan", "Fitri Handayani", "Gilang Mahesa", "Hana Safitri",
		"Indra Wijaya", "Joko Santoso",
	}
	var rows []siswaModel.SiswaModel
	for i, n := range nama {
		sg := sanggas[i%len(sanggas)]
		rows = append(rows, siswaModel.SiswaModel{
			SiswaNama:     n,
			SiswaKelas:    "X",
			SiswaJurusan:  "Umum",
			SiswaSanggaID: &sg.SanggaID,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return err
	}
	log.Printf("🧑‍🎓 Siswa: %d baris baru.", len(rows))
	return nil
}
