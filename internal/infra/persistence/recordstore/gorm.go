package recordstore

import (
	"context"
	"errors"
	"time"

	"github.com/notarydesk/priorities/internal/infra/persistence/commonrepo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm stores one row per collection in priority_system_records.
type Gorm struct {
	commonrepo.DefaultRepo
}

func NewGorm(db commonrepo.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&RecordPo{}); err != nil {
		return nil, err
	}
	return &Gorm{DefaultRepo: commonrepo.NewDefaultRepo(db)}, nil
}

func (g *Gorm) Load(ctx context.Context, key Key) ([]byte, bool, error) {
	var po RecordPo
	if err := g.Db(ctx).Where("record_key = ?", string(key)).First(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(po.Value), true, nil
}

func (g *Gorm) Save(ctx context.Context, key Key, value []byte) error {
	return g.upsert(g.Db(ctx), key, value)
}

func (g *Gorm) ReplaceAll(ctx context.Context, values map[Key][]byte) error {
	return g.Execute(ctx, func(ctx context.Context) error {
		db := g.Db(ctx)
		for _, k := range Keys {
			v, ok := values[k]
			if !ok {
				continue
			}
			if err := g.upsert(db, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *Gorm) upsert(db commonrepo.DB, key Key, value []byte) error {
	po := RecordPo{
		RecordKey: string(key),
		Value:     datatypes.JSON(append([]byte(nil), value...)),
		UpdatedAt: time.Now(),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&po).Error
}

func (g *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := g.Raw().DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *Gorm) Close() error {
	sqlDB, err := g.Raw().DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
