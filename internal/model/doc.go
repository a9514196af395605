package model

// Package model defines the card data used across the app: immutable cards,
// swipe directions, and the ordered card stack. Structures are designed for
// direct binding in the UI and explicit state transitions.
