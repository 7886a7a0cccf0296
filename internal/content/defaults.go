package content

// defaultGallery lists the salon's own gallery uploads in display order.
var defaultGallery = []string{
	"/lovable-uploads/e9f1b713-25e4-4e89-9c66-d716bc830158.png",
	"/lovable-uploads/c17696ee-fba7-4dbf-8f03-44dcdc3953cb.png",
	"/lovable-uploads/65248983-0eb5-4855-a92b-a878c0ca52f6.png",
	"/lovable-uploads/abb3a452-1e1a-47e1-8144-19dda92d9565.png",
	"/lovable-uploads/6038b552-f9a9-49b2-8ca9-353b0085ba26.png",
	"/lovable-uploads/cf4b6c20-5d94-4ba1-9299-2684e6697ec5.png",
	"/lovable-uploads/e626414b-5ac7-4446-8e7e-4631b709714a.png",
	"/lovable-uploads/15066012-516b-4bc5-8ce1-d170cc3983cb.png",
	"/lovable-uploads/7d0233ee-21e2-4d10-9d1f-2429ab3fe4dc.png",
	"/lovable-uploads/375c9182-64a6-45cb-8994-5caf47e38a34.png",
	"/lovable-uploads/e6449296-82b2-4208-af7b-9050ffedc98b.png",
	"/lovable-uploads/0b0777da-f609-4b08-a18e-af3e626fe8b1.png",
	"/lovable-uploads/9780f7a2-c1be-4a0e-8cf7-6efb4c24915f.png",
	"/lovable-uploads/3e1ce186-cb91-410d-b6f1-ff3f1dc9d850.png",
	"/lovable-uploads/51da65d6-6fb1-40d6-ae71-4221210318de.png",
}

const defaultAbout = `Paces Nailbar is a cozy salon in the heart of the city where every
visit is about you. Our technicians take the time to get the shape, length and
finish exactly right, whether you come in for a quick polish or a full set.

- Natural and artificial nails
- Gel and acrylic removal that protects the nail bed
- Hand-painted nail art, from simple accents to complex designs
`

// Default returns the built-in salon content.
func Default() *Content {
	return &Content{
		Name:    "Paces Nailbar",
		Tagline: "The Ultimate Nail Destination",
		Hero: Hero{
			Title:     "The Ultimate",
			Highlight: "Nail Destination",
			Text:      "Experience premium nail care with our talented technicians and exceptional service.",
			Image:     defaultGallery[0],
			ImageAlt:  "Beautiful french tip nails",
		},
		Gallery: append([]string(nil), defaultGallery...),
		Services: []Service{
			{
				ID: "manicure", Title: "Manicure", Category: "manicure", Icon: "scissors",
				SubServices: []SubService{
					{Name: "Natural Nails", Price: "5k"},
					{Name: "Artificial Nails", Price: "7k"},
				},
			},
			{
				ID: "pedicure", Title: "Pedicure", Category: "pedicure", Icon: "droplet",
				SubServices: []SubService{
					{Name: "Natural Nails", Price: "5k"},
					{Name: "Artificial Nails", Price: "6k"},
				},
			},
			{
				ID: "soak-off", Title: "Soak Off", Category: "soak-off", Icon: "paint-bucket",
				SubServices: []SubService{
					{Name: "Gel Polish Removal", Price: "2k"},
					{Name: "Acrylic Removal", Price: "3k"},
				},
			},
			{
				ID: "nail-art", Title: "Extra Art", Category: "nail-art", Icon: "palette",
				SubServices: []SubService{
					{Name: "Simple Design", Price: "2k"},
					{Name: "Complex Design", Price: "3k"},
				},
			},
		},
		Contact: Contact{
			Email:    "pacesnailbar@gmail.com",
			Phones:   []string{"+26599 726 8668", "+26588 949 7951"},
			WhatsApp: "+26599 726 8668",
			Location: "Visit our cozy salon in the heart of the city.",
			Hours: []Hours{
				{Days: "Monday to Saturday", Open: "9:00 AM", Close: "7:00 PM"},
				{Days: "Sunday", Open: "10:00 AM", Close: "5:00 PM"},
			},
		},
		About: defaultAbout,
	}
}
