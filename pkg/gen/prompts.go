package gen

// Prompt templates for the generation calls. The texts are part of the
// product behavior; the placeholders are filled with the caller's role,
// company, and skills text.

// coverLetterPrompt expects role, company, skills.
const coverLetterPrompt = `Write a passionate and professional cover letter for the position of %s at %s.

The candidate has the following skills and experience:
%s

Guidelines:
- Keep it concise (3-4 paragraphs)
- Show genuine enthusiasm for the role and company
- Highlight relevant skills naturally
- Use a professional but warm tone
- End with a strong call to action

Write only the cover letter body, no subject line or addresses.`

// interviewGuidePrompt expects role, company, skills, company again.
const interviewGuidePrompt = `Create a comprehensive interview preparation guide for the position of %s at %s.

Candidate's skills and background:
%s

Please include:
1. **Company Research Tips** - Key areas to research about %s
2. **Common Interview Questions** - 5-7 likely questions for this role
3. **STAR Method Examples** - How to structure answers using the candidate's skills
4. **Technical Topics** - Key technical areas to review based on the role
5. **Questions to Ask** - 3-5 insightful questions to ask the interviewer
6. **Day-of Tips** - Practical advice for interview day

Format with clear headings and bullet points. Keep it actionable and specific to this role.`

// analyzeResumePrompt instructs the model to extract structured résumé
// data from the attached document. The JSON shape must stay in sync with
// analysisSchema.
const analyzeResumePrompt = `Analyze this resume document and extract the data into a JSON structure matching this schema:
{
  "fullName": "string",
  "summary": "string - professional summary, improve wording to be action-oriented",
  "skills": "string - comma separated list of top skills",
  "experience": [
    { "title": "Role & Company", "date": "Date Range", "content": "Description - improved to be action-oriented" }
  ],
  "education": [
    { "title": "Degree & School", "date": "Date Range", "content": "Details" }
  ],
  "projects": [
    { "name": "Project Name", "description": "Short description", "tech": ["tech1", "tech2"] }
  ]
}

Only return the JSON object, no markdown formatting.`
