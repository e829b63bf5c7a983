package course

import (
	"fmt"
	"time"

	accessvo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	vo "github.com/edulane/edulane/internal/domain/course/valueobjects"
)

// Course is the course aggregate root. The access engine reads its
// subscription configuration (type, trial days, prices, trial lesson) but
// never mutates it; course management owns the write side.
type Course struct {
	id               uint
	ownerID          uint
	title            string
	description      string
	descriptionHTML  string
	price            int64 // one-off price in cents; 0 means free enrollment
	subscriptionType vo.SubscriptionType
	trialPeriodDays  *uint
	trialLessonID    *uint
	prices           map[accessvo.PeriodToken]int64 // subscription prices in cents
	visible          bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewCourse creates a new course owned by a teacher. New courses start hidden.
func NewCourse(ownerID uint, title, description, descriptionHTML string, price int64) (*Course, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := time.Now().UTC()
	return &Course{
		ownerID:         ownerID,
		title:           title,
		description:     description,
		descriptionHTML: descriptionHTML,
		price:           price,
		prices:          make(map[accessvo.PeriodToken]int64),
		visible:         false,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructCourse reconstructs a course from persistence.
func ReconstructCourse(
	id, ownerID uint,
	title, description, descriptionHTML string,
	price int64,
	subscriptionType vo.SubscriptionType,
	trialPeriodDays *uint,
	trialLessonID *uint,
	prices map[accessvo.PeriodToken]int64,
	visible bool,
	createdAt, updatedAt time.Time,
) (*Course, error) {
	if id == 0 {
		return nil, fmt.Errorf("course ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !vo.ValidSubscriptionTypes[subscriptionType] {
		return nil, fmt.Errorf("invalid subscription type: %s", subscriptionType)
	}
	if prices == nil {
		prices = make(map[accessvo.PeriodToken]int64)
	}

	return &Course{
		id:               id,
		ownerID:          ownerID,
		title:            title,
		description:      description,
		descriptionHTML:  descriptionHTML,
		price:            price,
		subscriptionType: subscriptionType,
		trialPeriodDays:  trialPeriodDays,
		trialLessonID:    trialLessonID,
		prices:           prices,
		visible:          visible,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Course) ID() uint                                 { return c.id }
func (c *Course) OwnerID() uint                            { return c.ownerID }
func (c *Course) Title() string                            { return c.title }
func (c *Course) Description() string                      { return c.description }
func (c *Course) DescriptionHTML() string                  { return c.descriptionHTML }
func (c *Course) Price() int64                             { return c.price }
func (c *Course) SubscriptionType() vo.SubscriptionType    { return c.subscriptionType }
func (c *Course) TrialPeriodDays() *uint                   { return c.trialPeriodDays }
func (c *Course) TrialLessonID() *uint                     { return c.trialLessonID }
func (c *Course) Prices() map[accessvo.PeriodToken]int64   { return c.prices }
func (c *Course) Visible() bool                            { return c.visible }
func (c *Course) CreatedAt() time.Time                     { return c.createdAt }
func (c *Course) UpdatedAt() time.Time                     { return c.updatedAt }

// SetID sets the course ID (only for persistence layer use)
func (c *Course) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("course ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("course ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsFree reports whether enrollment requires no approval payment.
func (c *Course) IsFree() bool {
	return c.price == 0
}

// PriceFor returns the subscription price for a period, if configured.
func (c *Course) PriceFor(token accessvo.PeriodToken) (int64, bool) {
	price, ok := c.prices[token]
	return price, ok
}

// IsTrialLesson reports whether the lesson is the designated always-open
// preview lesson for this course.
func (c *Course) IsTrialLesson(lessonID uint) bool {
	return c.trialLessonID != nil && *c.trialLessonID == lessonID
}

// UpdateInfo replaces title, description and price.
func (c *Course) UpdateInfo(title, description, descriptionHTML string, price int64) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	c.title = title
	c.description = description
	c.descriptionHTML = descriptionHTML
	c.price = price
	c.updatedAt = time.Now().UTC()
	return nil
}

// ConfigureSubscription sets the subscription model for the course.
func (c *Course) ConfigureSubscription(subscriptionType vo.SubscriptionType, trialPeriodDays *uint) error {
	if !vo.ValidSubscriptionTypes[subscriptionType] {
		return fmt.Errorf("invalid subscription type: %s", subscriptionType)
	}
	if subscriptionType != vo.SubscriptionTrial && trialPeriodDays != nil {
		return fmt.Errorf("trial period days only apply to trial courses")
	}
	c.subscriptionType = subscriptionType
	c.trialPeriodDays = trialPeriodDays
	c.updatedAt = time.Now().UTC()
	return nil
}

// SetPrices replaces the subscription price table.
func (c *Course) SetPrices(prices map[accessvo.PeriodToken]int64) error {
	for token, price := range prices {
		if !token.IsValid() {
			return fmt.Errorf("invalid period token: %s", token)
		}
		if price < 0 {
			return fmt.Errorf("price for %s cannot be negative", token)
		}
	}
	if prices == nil {
		prices = make(map[accessvo.PeriodToken]int64)
	}
	c.prices = prices
	c.updatedAt = time.Now().UTC()
	return nil
}

// SetTrialLesson designates the always-open preview lesson. Passing nil clears it.
func (c *Course) SetTrialLesson(lessonID *uint) {
	c.trialLessonID = lessonID
	c.updatedAt = time.Now().UTC()
}

// SetVisible publishes or hides the course.
func (c *Course) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	c.visible = visible
	c.updatedAt = time.Now().UTC()
}
