package impl

import (
	"fmt"

	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
)

const (
	titleWeightAlert  = "Weight Alert"
	titleLowBattery   = "Low Battery"
	titleRainExpected = "Rain expected today!"
	titleBookScanned  = "Book scanned!"
	titleScanComplete = "Scan completed"
	titleSampleData   = "Weather unavailable"

	messageUmbrella   = "Don't forget your umbrella."
	messageNoNewBooks = "No new books detected"
)

// alert is a notification waiting to be raised.
type alert struct {
	kind    entity.NotificationType
	title   string
	message string
}

// detectAlerts returns the alerts for every condition that is true in after
// but was false in before. Conditions that stay true raise nothing.
func detectAlerts(before, after entity.State) []alert {
	was := derive.Evaluate(before)
	now := derive.Evaluate(after)

	var alerts []alert

	if now.IsOverweight && !was.IsOverweight {
		alerts = append(alerts, alert{
			kind:  entity.NotificationTypeWeight,
			title: titleWeightAlert,
			message: fmt.Sprintf("Backpack weight (%.1fkg) exceeds recommended limit of %gkg",
				after.Weight.CurrentKg, after.Settings.MaxWeightKg),
		})
	}

	if now.IsLowBattery && !was.IsLowBattery {
		alerts = append(alerts, alert{
			kind:    entity.NotificationTypeBattery,
			title:   titleLowBattery,
			message: fmt.Sprintf("Your backpack battery is at %.0f%%", after.Battery.Level),
		})
	}

	if now.NeedUmbrella && !was.NeedUmbrella {
		alerts = append(alerts, alert{
			kind:    entity.NotificationTypeWeather,
			title:   titleRainExpected,
			message: messageUmbrella,
		})
	}

	return alerts
}

func scannedAlert(book entity.Book) alert {
	return alert{
		kind:    entity.NotificationTypeBook,
		title:   titleBookScanned,
		message: book.Title + " added to your backpack",
	}
}

func noNewBooksAlert() alert {
	return alert{
		kind:    entity.NotificationTypeBook,
		title:   titleScanComplete,
		message: messageNoNewBooks,
	}
}

func sampleDataAlert(advisory string) alert {
	return alert{
		kind:    entity.NotificationTypeGeneral,
		title:   titleSampleData,
		message: advisory,
	}
}
