package navigation

import "log"

// Navigator moves the application to a destination.
type Navigator interface {
	Navigate(destinationID string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(destinationID string) error

// Navigate calls f.
func (f NavigatorFunc) Navigate(destinationID string) error {
	return f(destinationID)
}

// SetupWithNavigator routes every accepted selection on bar to nav. The
// entry ID is the destination. Navigation errors are logged; the selection
// itself has already been committed.
func SetupWithNavigator(bar *NavBar, nav Navigator) {
	bar.OnSelectionChanged(func(entry MenuEntry) {
		if err := nav.Navigate(entry.ID); err != nil {
			log.Printf("[NavBar] Warning: navigation to %q failed: %v", entry.ID, err)
		}
	})
}
