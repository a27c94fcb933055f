package model

// Package model defines the data structures shared by the lookup client, the
// search controller and the UI: meal records with their fixed ingredient slots,
// derived ingredient entries and the single view state record the screen renders.
