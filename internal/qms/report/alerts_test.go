package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-qms/internal/qms/entity"
)

func TestBuildAlertsStaleIssues(t *testing.T) {
	stale := issue("i1", entity.IssueStatusOpen, datePtr(2026, time.January, 1), nil)
	fresh := issue("i2", entity.IssueStatusOpen, datePtr(2026, time.March, 1), nil)
	// 刚好30天，不算长期
	boundary := issue("i3", entity.IssueStatusOpen, timePtr(testNow.AddDate(0, 0, -30)), nil)
	closedStale := issue("i4", entity.IssueStatusClosed, datePtr(2025, time.June, 1), datePtr(2026, time.January, 1))

	bundle := BuildAlerts([]entity.Issue{stale, fresh, boundary, closedStale}, nil, nil, nil, testNow)
	if len(bundle.StaleIssues) != 1 {
		t.Fatalf("stale = %+v", bundle.StaleIssues)
	}
	if bundle.StaleIssues[0].IssueID != "i1" {
		t.Errorf("stale head = %+v", bundle.StaleIssues[0])
	}
	if bundle.StaleIssues[0].AgeDays < 70 {
		t.Errorf("age = %d, want ~73", bundle.StaleIssues[0].AgeDays)
	}
}

func TestBuildAlertsStaleCap(t *testing.T) {
	var issues []entity.Issue
	for i := 0; i < 15; i++ {
		is := issue(fmt.Sprintf("i%02d", i), entity.IssueStatusOpen, timePtr(testNow.AddDate(0, 0, -40-i)), nil)
		issues = append(issues, is)
	}
	bundle := BuildAlerts(issues, nil, nil, nil, testNow)
	if len(bundle.StaleIssues) != alertLimit {
		t.Fatalf("stale length = %d, want %d", len(bundle.StaleIssues), alertLimit)
	}
	// 账龄最大的在前
	if bundle.StaleIssues[0].IssueID != "i14" {
		t.Errorf("head = %+v", bundle.StaleIssues[0])
	}
}

func TestBuildAlertsCalibrationsUncapped(t *testing.T) {
	var calibrations []entity.Calibration
	for i := 0; i < 15; i++ {
		calibrations = append(calibrations, entity.Calibration{
			ID:                  fmt.Sprintf("c%02d", i),
			IsActive:            true,
			NextCalibrationDate: timePtr(testNow.AddDate(0, 0, -1-i)),
		})
	}
	eq := entity.Equipment{ID: "e1", Name: "CMM-01", Status: entity.EquipmentStatusActive, Calibrations: calibrations}

	bundle := BuildAlerts(nil, []entity.Equipment{eq}, nil, nil, testNow)
	if len(bundle.OverdueCalibrations) != 15 {
		t.Fatalf("calibration alerts must not be capped: %d", len(bundle.OverdueCalibrations))
	}
	if bundle.OverdueCalibrations[0].DaysOverdue < bundle.OverdueCalibrations[1].DaysOverdue {
		t.Error("calibration alerts must sort by days overdue descending")
	}
}

func TestBuildAlertsExpiringDocuments(t *testing.T) {
	inside := entity.Document{ID: "d1", Name: "WI-100", ValidUntil: timePtr(testNow.AddDate(0, 0, 10))}
	edge := entity.Document{ID: "d2", Name: "WI-200", ValidUntil: timePtr(testNow.AddDate(0, 0, 30))}
	today := entity.Document{ID: "d3", Name: "WI-300", ValidUntil: timePtr(testNow)}
	expired := entity.Document{ID: "d4", Name: "WI-400", ValidUntil: timePtr(testNow.AddDate(0, 0, -1))}
	far := entity.Document{ID: "d5", Name: "WI-500", ValidUntil: timePtr(testNow.AddDate(0, 0, 31))}
	open := entity.Document{ID: "d6", Name: "WI-600"}

	bundle := BuildAlerts(nil, nil, []entity.Document{inside, edge, today, expired, far, open}, nil, testNow)
	if len(bundle.ExpiringDocuments) != 3 {
		t.Fatalf("expiring = %+v", bundle.ExpiringDocuments)
	}
	// 剩余天数升序：今天到期的最先
	if bundle.ExpiringDocuments[0].DocumentID != "d3" || bundle.ExpiringDocuments[0].DaysRemaining != 0 {
		t.Errorf("head = %+v", bundle.ExpiringDocuments[0])
	}
	if bundle.ExpiringDocuments[2].DocumentID != "d2" || bundle.ExpiringDocuments[2].DaysRemaining != 30 {
		t.Errorf("tail = %+v", bundle.ExpiringDocuments[2])
	}
}

func TestBuildAlertsCarriesCostAnomaly(t *testing.T) {
	costs := []entity.QualityCost{
		cost("c1", 100, timePtr(testNow.AddDate(0, -1, 0)), ""),
		cost("c2", 151, timePtr(testNow), ""),
	}
	bundle := BuildAlerts(nil, nil, nil, costs, testNow)
	if bundle.CostAnomaly == nil {
		t.Fatal("expected cost anomaly in bundle")
	}
}
