package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending    = "pendente"
	StatusInProgress = "em andamento"
	StatusCompleted  = "concluído"
)

func ValidProjectStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Project struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Status        string    `gorm:"size:30;not null;default:pendente" json:"status"`
	Agilidade     int       `gorm:"not null;default:0" json:"agilidade"`
	Encantamento  int       `gorm:"not null;default:0" json:"encantamento"`
	Eficiencia    int       `gorm:"not null;default:0" json:"eficiencia"`
	Excelencia    int       `gorm:"not null;default:0" json:"excelencia"`
	Transparencia int       `gorm:"not null;default:0" json:"transparencia"`
	Ambicao       int       `gorm:"not null;default:0" json:"ambicao"`
	Completion    int       `gorm:"not null;default:0" json:"completion"`
	ResponsibleID string    `gorm:"size:36;not null;index" json:"responsibleId"`
	Responsible   User      `gorm:"foreignKey:ResponsibleID" json:"-"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null" json:"updatedAt"`
}

func (project *Project) BeforeCreate(*gorm.DB) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	return nil
}
