package home

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"homeiota.xyz/home-monitor-service/pkg/common"
	"homeiota.xyz/home-monitor-service/pkg/models"
)

func (h *Home) recordTemperature(value float64, location string, ts time.Time) (*models.TemperatureReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)

	reading := models.TemperatureReading{
		Value:     value,
		Location:  location,
		Timestamp: ts,
	}
	if err := h.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Recorded temperature",
		zap.String("location", location),
		zap.Float64("value", value))
	return &reading, nil
}

func (h *Home) listTemperatures(location string) ([]models.TemperatureReading, error) {
	var readings []models.TemperatureReading
	query := h.Db.Conn.Order("timestamp desc")
	if location != "" {
		query = query.Where("location = ?", location)
	}
	err := query.Find(&readings).Error
	return readings, err
}

func (h *Home) getTemperature(id uint) (*models.TemperatureReading, error) {
	var reading models.TemperatureReading
	err := h.Db.Conn.First(&reading, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func (h *Home) deleteTemperature(id uint) error {
	return h.Db.Conn.Delete(&models.TemperatureReading{}, id).Error
}

// recordPumpRun stores a pump run and, for low-current runs, mirrors the row
// into the critical table. A failed mirror write is logged but does not fail
// the ingest.
func (h *Home) recordPumpRun(runTime int, current float64, lowCurrent bool, ts time.Time) (*models.PumpRunTime, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)

	run := models.PumpRunTime{
		RunTime:    runTime,
		Current:    current,
		LowCurrent: lowCurrent,
		Timestamp:  ts,
	}
	if err := h.Db.Conn.Create(&run).Error; err != nil {
		return nil, err
	}

	if lowCurrent {
		critical := models.PumpRunTimeCritical{
			RunTime:    runTime,
			Current:    current,
			LowCurrent: lowCurrent,
			Timestamp:  ts,
		}
		if err := h.Db.Conn.Create(&critical).Error; err != nil {
			logger.Error("Failed to mirror low-current run", zap.Error(err), zap.Uint("run_id", run.ID))
		}
	}

	logger.Info("Recorded pump run",
		zap.Int("run_time", runTime),
		zap.Float64("current", current),
		zap.Bool("low_current", lowCurrent))
	return &run, nil
}

func (h *Home) listPumpRuns() ([]models.PumpRunTime, error) {
	var runs []models.PumpRunTime
	err := h.Db.Conn.Order("timestamp desc").Find(&runs).Error
	return runs, err
}

func (h *Home) getPumpRun(id uint) (*models.PumpRunTime, error) {
	var run models.PumpRunTime
	err := h.Db.Conn.First(&run, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (h *Home) deletePumpRun(id uint) error {
	return h.Db.Conn.Delete(&models.PumpRunTime{}, id).Error
}

func (h *Home) recordHeartbeat(deviceID string, pump bool, ts time.Time) (*models.DeviceHeartbeat, error) {
	heartbeat := models.DeviceHeartbeat{
		DeviceID:  deviceID,
		Pump:      pump,
		Timestamp: ts,
	}
	if err := h.Db.Conn.Create(&heartbeat).Error; err != nil {
		return nil, err
	}
	return &heartbeat, nil
}

type IIngestImpl struct {
	home *Home
}

func (ii *IIngestImpl) RecordTemperature(value float64, location string, ts time.Time) (*models.TemperatureReading, error) {
	return ii.home.recordTemperature(value, location, ts)
}

func (ii *IIngestImpl) ListTemperatures(location string) ([]models.TemperatureReading, error) {
	return ii.home.listTemperatures(location)
}

func (ii *IIngestImpl) GetTemperature(id uint) (*models.TemperatureReading, error) {
	return ii.home.getTemperature(id)
}

func (ii *IIngestImpl) DeleteTemperature(id uint) error {
	return ii.home.deleteTemperature(id)
}

func (ii *IIngestImpl) RecordPumpRun(runTime int, current float64, lowCurrent bool, ts time.Time) (*models.PumpRunTime, error) {
	return ii.home.recordPumpRun(runTime, current, lowCurrent, ts)
}

func (ii *IIngestImpl) ListPumpRuns() ([]models.PumpRunTime, error) {
	return ii.home.listPumpRuns()
}

func (ii *IIngestImpl) GetPumpRun(id uint) (*models.PumpRunTime, error) {
	return ii.home.getPumpRun(id)
}

func (ii *IIngestImpl) DeletePumpRun(id uint) error {
	return ii.home.deletePumpRun(id)
}

func (ii *IIngestImpl) RecordHeartbeat(deviceID string, pump bool, ts time.Time) (*models.DeviceHeartbeat, error) {
	return ii.home.recordHeartbeat(deviceID, pump, ts)
}

func (h *Home) GetIIngest() IIngest {
	return &IIngestImpl{home: h}
}
