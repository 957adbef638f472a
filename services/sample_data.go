package services

// sampleGuests seeds the available pool when sample data is enabled.
var sampleGuests = []AddGuestCommand{
	{Name: "Ivan Petrov", FamilyID: "Petrovi"},
	{Name: "Maria Petrova", FamilyID: "Petrovi"},
	{Name: "Georgi Ivanov", FamilyID: "Ivanovi"},
	{Name: "Elena Ivanova", FamilyID: "Ivanovi"},
	{Name: "Stoyan Dimitrov", FamilyID: "Dimitrovi"},
	{Name: "Albena Dimitrova", FamilyID: "Dimitrovi"},
	{Name: "Yoanna Todorova", FamilyID: "Todorovi"},
	{Name: "Stefan Todorov", FamilyID: "Todorovi"},
	{Name: "Ivailo Todorov", FamilyID: "Todorovi"},
}
