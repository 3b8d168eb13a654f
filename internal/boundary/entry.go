package boundary

import (
	"openfairdb/internal/domain"
	pkgerrors "openfairdb/pkg/errors"
	"openfairdb/pkg/strutil"
)

// Entry is the flattened legacy representation of a place: location, address,
// contact and links are embedded at top level instead of nested.
type Entry struct {
	ID           string       `json:"id"`
	Created      int64        `json:"created"`
	Version      uint64       `json:"version"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	Street       *string      `json:"street,omitempty"`
	Zip          *string      `json:"zip,omitempty"`
	City         *string      `json:"city,omitempty"`
	Country      *string      `json:"country,omitempty"`
	State        *string      `json:"state,omitempty"`
	ContactName  *string      `json:"contact_name,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Telephone    *string      `json:"telephone,omitempty"`
	Homepage     *string      `json:"homepage,omitempty"`
	OpeningHours *string      `json:"opening_hours,omitempty"`
	FoundedOn    *string      `json:"founded_on,omitempty"`
	Categories   []string     `json:"categories"`
	Tags         []string     `json:"tags"`
	Ratings      []string     `json:"ratings"`
	License      *string      `json:"license,omitempty"`
	ImageURL     *string      `json:"image_url,omitempty"`
	ImageLinkURL *string      `json:"image_link_url,omitempty"`
	CustomLinks  []CustomLink `json:"custom,omitempty"`
}

// NewPlace is the creation payload: an Entry without id, created and
// ratings.
type NewPlace struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	Street       *string      `json:"street,omitempty"`
	Zip          *string      `json:"zip,omitempty"`
	City         *string      `json:"city,omitempty"`
	Country      *string      `json:"country,omitempty"`
	State        *string      `json:"state,omitempty"`
	ContactName  *string      `json:"contact_name,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Telephone    *string      `json:"telephone,omitempty"`
	Homepage     *string      `json:"homepage,omitempty"`
	OpeningHours *string      `json:"opening_hours,omitempty"`
	FoundedOn    *string      `json:"founded_on,omitempty"`
	Categories   []string     `json:"categories"`
	Tags         []string     `json:"tags"`
	License      string       `json:"license"`
	ImageURL     *string      `json:"image_url,omitempty"`
	ImageLinkURL *string      `json:"image_link_url,omitempty"`
	Links        []CustomLink `json:"links,omitempty"`
}

// UpdatePlace is the update payload: like NewPlace but versioned and without
// a license (the license is fixed at creation).
type UpdatePlace struct {
	Version      uint64       `json:"version"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	Street       *string      `json:"street,omitempty"`
	Zip          *string      `json:"zip,omitempty"`
	City         *string      `json:"city,omitempty"`
	Country      *string      `json:"country,omitempty"`
	State        *string      `json:"state,omitempty"`
	ContactName  *string      `json:"contact_name,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Telephone    *string      `json:"telephone,omitempty"`
	Homepage     *string      `json:"homepage,omitempty"`
	OpeningHours *string      `json:"opening_hours,omitempty"`
	FoundedOn    *string      `json:"founded_on,omitempty"`
	Categories   []string     `json:"categories"`
	Tags         []string     `json:"tags"`
	ImageURL     *string      `json:"image_url,omitempty"`
	ImageLinkURL *string      `json:"image_link_url,omitempty"`
	Links        []CustomLink `json:"links,omitempty"`
}

// EntryFromPlace flattens a place into the legacy schema. Category tags are
// reported under their historic ids; rating ids are passed through.
func EntryFromPlace(p domain.Place, ratings []domain.ID) Entry {
	categories, tags := domain.SplitCategoriesFromTags(p.Tags)
	categoryIDs := make([]string, 0, len(categories))
	for _, c := range categories {
		categoryIDs = append(categoryIDs, c.ID.String())
	}
	ratingIDs := make([]string, 0, len(ratings))
	for _, id := range ratings {
		ratingIDs = append(ratingIDs, id.String())
	}

	e := Entry{
		ID:           p.ID.String(),
		Created:      p.Created.At.Seconds(),
		Version:      uint64(p.Revision),
		Title:        p.Title,
		Description:  p.Description,
		Lat:          p.Location.Pos.LatDeg(),
		Lng:          p.Location.Pos.LngDeg(),
		OpeningHours: p.OpeningHours,
		FoundedOn:    formatDate(p.FoundedOn),
		Categories:   categoryIDs,
		Tags:         tags,
		Ratings:      ratingIDs,
		License:      strPtr(p.License),
	}
	if p.Location.Address != nil {
		a := *p.Location.Address
		e.Street, e.Zip, e.City, e.Country, e.State = a.Street, a.Zip, a.City, a.Country, a.State
	}
	if p.Contact != nil {
		e.ContactName = p.Contact.Name
		e.Email = emailToString(p.Contact.Email)
		e.Telephone = p.Contact.Phone
	}
	if p.Links != nil {
		e.Homepage = urlToString(p.Links.Homepage)
		e.ImageURL = urlToString(p.Links.Image)
		e.ImageLinkURL = urlToString(p.Links.ImageHref)
		e.CustomLinks = customLinksFromDomain(p.Links.Custom)
	}
	return e
}

// ToPlace unflattens the creation payload into a fresh first revision.
// Failure points: coordinate range, URL parsing, date parsing and unknown
// category ids.
func (p NewPlace) ToPlace(id domain.ID, created domain.Activity) (domain.Place, error) {
	return assemblePlace(placeFields{
		id:           id,
		license:      p.License,
		revision:     domain.InitialRevision,
		created:      created,
		title:        p.Title,
		description:  p.Description,
		lat:          p.Lat,
		lng:          p.Lng,
		street:       p.Street,
		zip:          p.Zip,
		city:         p.City,
		country:      p.Country,
		state:        p.State,
		contactName:  p.ContactName,
		email:        p.Email,
		telephone:    p.Telephone,
		homepage:     p.Homepage,
		openingHours: p.OpeningHours,
		foundedOn:    p.FoundedOn,
		categories:   p.Categories,
		tags:         p.Tags,
		imageURL:     p.ImageURL,
		imageLinkURL: p.ImageLinkURL,
		customLinks:  p.Links,
	})
}

// ToPlace unflattens the update payload into the revision named by Version.
// The license is carried over from the stored place.
func (p UpdatePlace) ToPlace(id domain.ID, license string, created domain.Activity) (domain.Place, error) {
	return assemblePlace(placeFields{
		id:           id,
		license:      license,
		revision:     domain.Revision(p.Version),
		created:      created,
		title:        p.Title,
		description:  p.Description,
		lat:          p.Lat,
		lng:          p.Lng,
		street:       p.Street,
		zip:          p.Zip,
		city:         p.City,
		country:      p.Country,
		state:        p.State,
		contactName:  p.ContactName,
		email:        p.Email,
		telephone:    p.Telephone,
		homepage:     p.Homepage,
		openingHours: p.OpeningHours,
		foundedOn:    p.FoundedOn,
		categories:   p.Categories,
		tags:         p.Tags,
		imageURL:     p.ImageURL,
		imageLinkURL: p.ImageLinkURL,
		customLinks:  p.Links,
	})
}

type placeFields struct {
	id           domain.ID
	license      string
	revision     domain.Revision
	created      domain.Activity
	title        string
	description  string
	lat          float64
	lng          float64
	street       *string
	zip          *string
	city         *string
	country      *string
	state        *string
	contactName  *string
	email        *string
	telephone    *string
	homepage     *string
	openingHours *string
	foundedOn    *string
	categories   []string
	tags         []string
	imageURL     *string
	imageLinkURL *string
	customLinks  []CustomLink
}

func assemblePlace(f placeFields) (domain.Place, error) {
	pos, err := domain.MapPointFromLatLngDeg(f.lat, f.lng)
	if err != nil {
		return domain.Place{}, pkgerrors.Wrap(err, pkgerrors.CodeBadRequest, "invalid coordinate")
	}
	foundedOn, err := parseDate(f.foundedOn, "founded_on")
	if err != nil {
		return domain.Place{}, err
	}
	tags, err := mergeCategoryTags(f.categories, f.tags)
	if err != nil {
		return domain.Place{}, err
	}
	links, err := flattenedLinks(f.homepage, f.imageURL, f.imageLinkURL, f.customLinks)
	if err != nil {
		return domain.Place{}, err
	}

	place := domain.Place{
		ID:           f.id,
		License:      f.license,
		Revision:     f.revision,
		Created:      f.created,
		Title:        f.title,
		Description:  f.description,
		Location:     domain.Location{Pos: pos},
		OpeningHours: f.openingHours,
		FoundedOn:    foundedOn,
		Links:        links,
		Tags:         tags,
	}

	addr := domain.Address{Street: f.street, Zip: f.zip, City: f.city, Country: f.country, State: f.state}
	if !addr.IsEmpty() {
		place.Location.Address = &addr
	}
	if f.contactName != nil || f.email != nil || f.telephone != nil {
		place.Contact = &domain.Contact{
			Name:  f.contactName,
			Email: stringToEmail(f.email),
			Phone: f.telephone,
		}
	}
	return place, nil
}

// mergeCategoryTags folds legacy category ids back into the tag list.
func mergeCategoryTags(categoryIDs, tags []string) ([]string, error) {
	merged := make([]string, 0, len(categoryIDs)+len(tags))
	for _, id := range categoryIDs {
		name := domain.Category{ID: domain.ID(id)}.Name()
		if name == "" {
			return nil, pkgerrors.Newf(pkgerrors.CodeBadRequest, "unknown category %q", id)
		}
		merged = append(merged, name)
	}
	return strutil.NormalizeTags(append(merged, tags...)), nil
}

func flattenedLinks(homepage, imageURL, imageLinkURL *string, custom []CustomLink) (*domain.Links, error) {
	if homepage == nil && imageURL == nil && imageLinkURL == nil && len(custom) == 0 {
		return nil, nil
	}
	hp, err := parseOptURL(homepage, "homepage")
	if err != nil {
		return nil, err
	}
	img, err := parseOptURL(imageURL, "image_url")
	if err != nil {
		return nil, err
	}
	imgHref, err := parseOptURL(imageLinkURL, "image_link_url")
	if err != nil {
		return nil, err
	}
	customLinks, err := customLinksToDomain(custom)
	if err != nil {
		return nil, err
	}
	return &domain.Links{
		Homepage:  hp,
		Image:     img,
		ImageHref: imgHref,
		Custom:    customLinks,
	}, nil
}
