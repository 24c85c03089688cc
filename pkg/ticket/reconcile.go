package ticket

import (
	"strconv"

	"github.com/tripweave/tripweave/pkg/inventory"
	"github.com/tripweave/tripweave/pkg/trip"
)

// Reconcile aligns parsed slots with the files found in the activity's
// folder. Actual files win: when the folder holds more PDFs or QR images
// than the format spec declared, extra slots are appended, then every
// slot of
// that kind is filled positionally with the file's label and URL in
// stored order. Slots beyond the file count stay unfilled.
func Reconcile(activityID string, slots []trip.TicketSlot, folder inventory.Folder) []trip.TicketSlot {
	out := append([]trip.TicketSlot(nil), slots...)
	out = syncKind(activityID, out, trip.KindPDF, "pdf", "PDF", folder.PDF)
	out = syncKind(activityID, out, trip.KindQRImage, "qr", "QR", folder.QR)
	return out
}

func syncKind(activityID string, slots []trip.TicketSlot, kind trip.TicketKind, idTag, labelTag string, files []inventory.Attachment) []trip.TicketSlot {
	if len(files) == 0 {
		return slots
	}

	current := 0
	for _, s := range slots {
		if s.Kind == kind {
			current++
		}
	}

	for i := 0; current+i < len(files); i++ {
		slots = append(slots, trip.TicketSlot{
			ID:    activityID + ":" + idTag + ":extra:" + strconv.Itoa(i),
			Kind:  kind,
			Label: labelTag + " " + strconv.Itoa(current+i+1),
		})
	}

	next := 0
	for i := range slots {
		if slots[i].Kind != kind || next >= len(files) {
			continue
		}
		slots[i].Label = files[next].Label
		slots[i].Value = &trip.SlotValue{URL: files[next].URL}
		next++
	}
	return slots
}
