package importer

// RosterTemplateHeader is the column layout accepted by ParseRosterCSV.
const RosterTemplateHeader = "ID,Name,PreferredDays(semicolon sep),NG_IDs(semicolon sep)"

// RosterTemplate returns a header and two example rows showing the roster
// CSV layout.
func RosterTemplate() string {
	return RosterTemplateHeader + "\n" +
		"1,Taro Tanaka,1;5;10,2;3\n" +
		"2,Hanako Sato,10;15,"
}
