package narrative

// Intro is the opening event published when a simulation starts.
func Intro() Event {
	return Event{
		Kind:  KindIntro,
		Title: "Welcome to Krynn",
		Body: "The armies of Queen Takhisis march across Krynn, and the gods have called on you " +
			"to stand against her draconians.\n\n" +
			"Your road begins in the drowned ruins beneath Xak Tsaroth, where an old artifact " +
			"is said to wait for someone brave enough to claim it.",
	}
}

// Victory is published once the dungeon has been cleared.
func Victory() Event {
	return Event{
		Kind:  KindVictory,
		Title: "Victory!",
		Body: "The last of the dungeon's defenders has fallen and the Dragon Orb is yours. " +
			"With it the free peoples of Krynn have a weapon against Takhisis.",
	}
}

// GameOver is published when the player falls.
func GameOver() Event {
	return Event{
		Kind:  KindGameOver,
		Title: "Game Over",
		Body: "You have fallen in the dark beneath Xak Tsaroth. Without you the Dark Queen's " +
			"shadow lengthens, and another hero must rise in your place.",
	}
}
