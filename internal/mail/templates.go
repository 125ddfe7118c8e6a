package mail

import "fmt"

// OTPEmail renders the verification-code message.
func OTPEmail(code string) (subject, body string) {
	subject = "Your SmarTQue Verification Code"
	body = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #6C63FF, #4A44C6); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0;">SmarTQue</h1>
    <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0;">Email Verification</p>
  </div>
  <div style="padding: 40px; border: 1px solid #e9ecef; border-top: none; border-radius: 0 0 10px 10px;">
    <p>Thank you for registering with SmarTQue. Use the code below to complete your registration:</p>
    <div style="text-align: center; margin: 30px 0; padding: 25px; border: 3px solid #6C63FF; border-radius: 12px;">
      <h1 style="font-size: 44px; letter-spacing: 10px; color: #6C63FF; margin: 0;">%s</h1>
    </div>
    <p><strong>This code expires in 10 minutes.</strong></p>
    <p style="color: #999; font-size: 12px;">Never share this code. If you didn't request it, ignore this email.</p>
  </div>
</div>`, code)
	return subject, body
}

// ResetEmail renders the password-reset message.
func ResetEmail(name, resetURL string) (subject, body string) {
	subject = "Reset Your SmarTQue Password"
	body = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #6C63FF, #00BFA6); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0;">Password Reset</h1>
  </div>
  <div style="padding: 40px; border: 1px solid #e0e0e0; border-top: none; border-radius: 0 0 10px 10px;">
    <p>Hello %s,</p>
    <p>You requested to reset your password for SmarTQue.</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s" style="background: #6C63FF; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px; display: inline-block; font-weight: bold;">Reset Password</a>
    </div>
    <p style="color: #666;">This link will expire in 1 hour.</p>
  </div>
</div>`, name, resetURL)
	return subject, body
}

// ReceiptEmail renders the completed-appointment receipt message.
func ReceiptEmail(name, departmentName string) (subject, body string) {
	subject = "Your SmarTQue Appointment Receipt"
	body = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <p>Hello %s,</p>
  <p>Your %s appointment is complete. Your receipt is attached.</p>
  <p>Thank you for using SmarTQue.</p>
</div>`, name, departmentName)
	return subject, body
}
