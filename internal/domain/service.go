package domain

// Service запись каталога услуг (статическая конфигурация)
type Service struct {
	ID          string
	Title       string
	Description string
	Price       string // отображаемая цена, например "R$ 120"
	Duration    string // отображаемая длительность, например "3-4 horas"
}

// Catalog каталог услуг с поиском по ID
type Catalog struct {
	services []Service
}

// NewCatalog создает каталог, сохраняя порядок услуг
func NewCatalog(services []Service) *Catalog {
	copied := make([]Service, len(services))
	copy(copied, services)
	return &Catalog{services: copied}
}

// Get возвращает услугу по ID
func (c *Catalog) Get(id string) (Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// All возвращает все услуги каталога
func (c *Catalog) All() []Service {
	result := make([]Service, len(c.services))
	copy(result, c.services)
	return result
}
