package task

const (
	CategoryDaily   = "daily"
	CategoryWeekly  = "weekly"
	CategoryMonthly = "monthly"
)

// Task is immutable catalog data.
type Task struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"column:title;type:varchar(120);not null" json:"title"`
	Description string `gorm:"column:description;type:text;not null;default:''" json:"description"`
	Points      int    `gorm:"column:points;type:int;not null;check:chk_tasks_points,points > 0" json:"points"`
	Category    string `gorm:"column:category;type:varchar(16);not null;index" json:"category"`
	Icon        string `gorm:"column:icon;type:varchar(32);not null;default:''" json:"icon"`
}

func (Task) TableName() string {
	return "tasks"
}

// CategoryRank orders daily before weekly before monthly.
func CategoryRank(category string) int {
	switch category {
	case CategoryDaily:
		return 0
	case CategoryWeekly:
		return 1
	case CategoryMonthly:
		return 2
	default:
		return 3
	}
}

// DefaultCatalog is the seeded set of sustainability tasks.
func DefaultCatalog() []*Task {
	return []*Task{
		{ID: 1, Title: "Separar lixo reciclável", Description: "Separe plástico, papel e vidro", Points: 10, Category: CategoryDaily, Icon: "recycle"},
		{ID: 2, Title: "Economizar água", Description: "Tome um banho de 5 minutos", Points: 15, Category: CategoryDaily, Icon: "droplet"},
		{ID: 3, Title: "Apagar luzes", Description: "Desligue luzes ao sair do ambiente", Points: 5, Category: CategoryDaily, Icon: "zap"},
		{ID: 4, Title: "Usar sacola reutilizável", Description: "Vá às compras com sua própria sacola", Points: 20, Category: CategoryWeekly, Icon: "leaf"},
		{ID: 5, Title: "Plantar uma árvore", Description: "Contribua com o reflorestamento", Points: 50, Category: CategoryWeekly, Icon: "leaf"},
		{ID: 6, Title: "Reduzir consumo de carne", Description: "Faça 3 refeições vegetarianas", Points: 30, Category: CategoryWeekly, Icon: "leaf"},
		{ID: 7, Title: "Limpar uma área pública", Description: "Organize ou participe de mutirão", Points: 100, Category: CategoryMonthly, Icon: "recycle"},
		{ID: 8, Title: "Educar 5 pessoas", Description: "Compartilhe dicas de sustentabilidade", Points: 75, Category: CategoryMonthly, Icon: "leaf"},
	}
}
