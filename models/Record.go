package models

// ConvertRecord is one row of conversion history shown by the web
// console.
type ConvertRecord struct {
	TaskID    string `gorm:"type:varchar(255);primary_key"`
	FileName  string `gorm:"type:varchar(255)"`
	Direction string `gorm:"type:varchar(255)"`
	Points    int
	Lines     int
	Polygons  int
	Status    string `gorm:"type:varchar(255)"`
	OutDir    string `gorm:"type:varchar(255)"`
	Date      string `gorm:"type:varchar(255)"`
}
