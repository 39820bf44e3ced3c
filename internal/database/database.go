package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pricetrends/server/internal/dataset"
	"pricetrends/server/internal/models"
)

// Database is the read-only market catalog. It is seeded once at boot.
type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewDatabase(dsn string, logger *logrus.Logger) (*Database, error) {
	if logger == nil {
		logger = logrus.New()
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %v", err)
	}

	return &Database{db: db, logger: logger}, nil
}

// NewTestDB opens a private in-memory catalog with the schema in place
func NewTestDB() (*Database, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	d, err := NewDatabase(dsn, nil)
	if err != nil {
		return nil, err
	}
	if err := d.RunMigrations(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) GetCityCards() ([]models.CityCard, error) {
	var rows []cityRow
	if err := d.db.Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query cities: %v", err)
	}

	cards := make([]models.CityCard, len(rows))
	for i, r := range rows {
		cards[i] = models.CityCard{City: r.Name, Price: r.Price, Growth: r.Growth, Image: r.Image}
	}
	return cards, nil
}

// GetCity looks a city up by name ignoring case and surrounding whitespace
func (d *Database) GetCity(name string) (*models.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dataset.ErrCityNotFound
	}

	var row cityRow
	err := d.db.Where("LOWER(name) = LOWER(?)", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", dataset.ErrCityNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query city: %v", err)
	}

	city := &models.City{
		Name:         row.Name,
		Price:        row.Price,
		Growth:       row.Growth,
		Image:        row.Image,
		Appreciating: []models.Locality{},
		Depreciating: []models.Locality{},
		PriceTrend:   make(map[models.TrendWindow][]models.TrendPoint),
	}

	var localities []localityRow
	if err := d.db.Where("city_id = ?", row.ID).Order("seq").Find(&localities).Error; err != nil {
		return nil, fmt.Errorf("failed to query localities: %v", err)
	}
	for _, l := range localities {
		loc := l.toModel()
		loc.City = ""
		if l.Appreciating {
			city.Appreciating = append(city.Appreciating, loc)
		} else {
			city.Depreciating = append(city.Depreciating, loc)
		}
	}

	var points []trendPointRow
	if err := d.db.Where("city_id = ?", row.ID).Order("horizon, position").Find(&points).Error; err != nil {
		return nil, fmt.Errorf("failed to query price trend: %v", err)
	}
	for _, p := range points {
		w := models.TrendWindow(p.Horizon)
		city.PriceTrend[w] = append(city.PriceTrend[w], models.TrendPoint{Label: p.Label, Price: p.Price})
	}

	return city, nil
}

// GetLocalities returns every locality tagged with its city, in dataset order
func (d *Database) GetLocalities() ([]models.Locality, error) {
	var rows []localityRow
	if err := d.db.Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query localities: %v", err)
	}

	out := make([]models.Locality, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

func (d *Database) GetStateAggregates() (map[string]models.StateAggregate, error) {
	var rows []stateAggregateRow
	if err := d.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query state aggregates: %v", err)
	}

	out := make(map[string]models.StateAggregate, len(rows))
	for _, r := range rows {
		out[r.State] = models.StateAggregate{AvgPrice: r.AvgPrice, Growth: r.Growth}
	}
	return out, nil
}
