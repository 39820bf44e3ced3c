package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pricetrends/server/internal/models"
)

type cityRow struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"uniqueIndex;not null"`
	Position int    `gorm:"not null"`
	Price    float64
	Growth   float64
	Image    string
}

func (cityRow) TableName() string { return "cities" }

type localityRow struct {
	ID           uint   `gorm:"primaryKey"`
	Seq          int    `gorm:"index;not null"`
	CityID       uint   `gorm:"index;not null"`
	CityName     string `gorm:"not null"`
	Name         string `gorm:"not null"`
	State        string `gorm:"index"`
	Growth       float64
	AvgPrice     float64
	Appreciating bool
}

func (localityRow) TableName() string { return "localities" }

func (r localityRow) toModel() models.Locality {
	return models.Locality{
		Name:     r.Name,
		City:     r.CityName,
		Growth:   r.Growth,
		AvgPrice: r.AvgPrice,
		State:    r.State,
	}
}

type trendPointRow struct {
	ID       uint   `gorm:"primaryKey"`
	CityID   uint   `gorm:"index:idx_trend_city_window;not null"`
	Horizon  string `gorm:"index:idx_trend_city_window;not null"`
	Position int    `gorm:"not null"`
	Label    string
	Price    float64
}

func (trendPointRow) TableName() string { return "trend_points" }

type stateAggregateRow struct {
	State    string `gorm:"primaryKey"`
	AvgPrice float64
	Growth   float64
}

func (stateAggregateRow) TableName() string { return "state_aggregates" }

func (d *Database) RunMigrations() error {
	return MigrateSchema(d.db)
}

func MigrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&cityRow{}, &localityRow{}, &trendPointRow{}, &stateAggregateRow{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %v", err)
	}
	return nil
}

// Seed replaces the catalog contents with the given cities and state table
// in one transaction.
func (d *Database) Seed(cities []models.City, aggregates map[string]models.StateAggregate) error {
	err := d.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&trendPointRow{}, &localityRow{}, &cityRow{}, &stateAggregateRow{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}
		}

		seq := 0
		for i, c := range cities {
			city := cityRow{Name: c.Name, Position: i, Price: c.Price, Growth: c.Growth, Image: c.Image}
			if err := tx.Create(&city).Error; err != nil {
				return fmt.Errorf("failed to insert city %s: %w", c.Name, err)
			}

			var localities []localityRow
			add := func(ls []models.Locality, appreciating bool) {
				for _, l := range ls {
					localities = append(localities, localityRow{
						Seq:          seq,
						CityID:       city.ID,
						CityName:     c.Name,
						Name:         l.Name,
						State:        l.State,
						Growth:       l.Growth,
						AvgPrice:     l.AvgPrice,
						Appreciating: appreciating,
					})
					seq++
				}
			}
			add(c.Appreciating, true)
			add(c.Depreciating, false)
			if len(localities) > 0 {
				if err := tx.Create(&localities).Error; err != nil {
					return fmt.Errorf("failed to insert localities of %s: %w", c.Name, err)
				}
			}

			var points []trendPointRow
			for window, series := range c.PriceTrend {
				for pos, p := range series {
					points = append(points, trendPointRow{
						CityID:   city.ID,
						Horizon:  string(window),
						Position: pos,
						Label:    p.Label,
						Price:    p.Price,
					})
				}
			}
			if len(points) > 0 {
				if err := tx.Create(&points).Error; err != nil {
					return fmt.Errorf("failed to insert price trend of %s: %w", c.Name, err)
				}
			}
		}

		if len(aggregates) > 0 {
			rows := make([]stateAggregateRow, 0, len(aggregates))
			for state, agg := range aggregates {
				rows = append(rows, stateAggregateRow{State: state, AvgPrice: agg.AvgPrice, Growth: agg.Growth})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to insert state aggregates: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.logger.WithFields(logrus.Fields{
		"cities":     len(cities),
		"localities": countLocalities(cities),
		"states":     len(aggregates),
	}).Info("Seeded market catalog")
	return nil
}

func countLocalities(cities []models.City) int {
	n := 0
	for _, c := range cities {
		n += len(c.Appreciating) + len(c.Depreciating)
	}
	return n
}
