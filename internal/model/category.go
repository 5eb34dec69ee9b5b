package model

// Category groups products. Products reference it by CategoryID only.
type Category struct {
	ID   uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:VARCHAR2(100);not null"`

	BaseEntity
}

func (*Category) TableName() string {
	return "category"
}

func NewCategory(name string) *Category {
	return &Category{Name: name}
}
