package content

// Content is everything the site displays. It is read-only once loaded.
type Content struct {
	Name     string    `yaml:"name"`
	Tagline  string    `yaml:"tagline"`
	Hero     Hero      `yaml:"hero"`
	Gallery  []string  `yaml:"gallery"`
	Services []Service `yaml:"services"`
	Contact  Contact   `yaml:"contact"`
	About    string    `yaml:"about"` // markdown
}

// Hero is the banner at the top of the page.
type Hero struct {
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
	Text      string `yaml:"text"`
	Image     string `yaml:"image"`
	ImageAlt  string `yaml:"image_alt"`
}

// Service is one card in the price list.
type Service struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Category    string       `yaml:"category"`
	Icon        string       `yaml:"icon"` // lucide icon name
	Description string       `yaml:"description,omitempty"`
	SubServices []SubService `yaml:"sub_services"`
	Disabled    bool         `yaml:"disabled,omitempty"`
}

// IsActive reports whether the service is shown and bookable.
func (s Service) IsActive() bool { return !s.Disabled }

// SubService is a priced line inside a service card.
type SubService struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Duration    int    `yaml:"duration,omitempty"` // minutes
	Description string `yaml:"description,omitempty"`
}

// Contact holds the salon's contact details.
type Contact struct {
	Email    string   `yaml:"email"`
	Phones   []string `yaml:"phones"`
	WhatsApp string   `yaml:"whatsapp"`
	Location string   `yaml:"location"`
	Hours    []Hours  `yaml:"hours"`
}

// Hours is an opening-hours line, e.g. "Monday to Saturday", "9:00 AM", "7:00 PM".
type Hours struct {
	Days  string `yaml:"days"`
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// ServiceOption is an entry in the booking form's service select.
type ServiceOption struct {
	Value string
	Label string
}
